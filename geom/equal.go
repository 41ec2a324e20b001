package geom

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Epsilon is the tolerance used by IsZero, Equal and Hash.
const Epsilon = 1e-8

// IsZero reports whether every component is closer to zero than Epsilon.
func (q Quaternion) IsZero() bool {
	return math.Abs(q.a) < Epsilon && math.Abs(q.b) < Epsilon &&
		math.Abs(q.c) < Epsilon && math.Abs(q.d) < Epsilon
}

// Equal reports whether each component of q and q2 differs by less than Epsilon.
// Equality is not transitive.
func (q Quaternion) Equal(q2 Quaternion) bool {
	return q.Minus(q2).IsZero()
}

// Hash returns a hash of q with components rounded to multiples of Epsilon.
// Values that differ only in the sign of zero or below the rounding step
// hash identically.
func (q Quaternion) Hash() uint64 {
	var buf [32]byte
	for i, v := range q.Components() {
		r := math.Round(v / Epsilon)
		if r == 0 {
			r = 0 // -0
		}
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(r))
	}
	return xxhash.Sum64(buf[:])
}
