package geom_test

import (
	"fmt"

	"github.com/binzume/quaternion/geom"
)

func ExampleQuaternion_Times() {
	i := geom.New(0, 1, 0, 0)
	j := geom.New(0, 0, 1, 0)
	fmt.Println(i.Times(j))
	fmt.Println(j.Times(i))
	// Output:
	// 0.0+0.0+0.0+1.0
	// 0.0+0.0+0.0-1.0
}

func ExampleParse() {
	q, err := geom.Parse("-1.0+1.0+2.0-2.0")
	if err != nil {
		panic(err)
	}
	inv, _ := q.Inverse()
	fmt.Printf("%.4f\n", q.Norm())
	fmt.Println(inv)
	// Output:
	// 3.1623
	// -0.1-0.1-0.2+0.2
}
