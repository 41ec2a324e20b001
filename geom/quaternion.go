// Package geom provides a double precision quaternion value type.
//
// A Quaternion is a+bi+cj+dk with i*i = j*j = k*k = -1, ij = k, jk = i, ki = j.
// Values are immutable: every operation returns a new Quaternion.
package geom

import (
	"math"

	"github.com/cockroachdb/errors"
)

type Quaternion struct {
	a, b, c, d float64
}

// New returns a+bi+cj+dk. Components are stored as given.
func New(a, b, c, d float64) Quaternion {
	return Quaternion{a: a, b: b, c: c, d: d}
}

// Real returns the real part.
func (q Quaternion) Real() float64 {
	return q.a
}

// I returns the imaginary part i.
func (q Quaternion) I() float64 {
	return q.b
}

// J returns the imaginary part j.
func (q Quaternion) J() float64 {
	return q.c
}

// K returns the imaginary part k.
func (q Quaternion) K() float64 {
	return q.d
}

func (q Quaternion) Components() [4]float64 {
	return [4]float64{q.a, q.b, q.c, q.d}
}

// Conjugate returns a-bi-cj-dk.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.a, -q.b, -q.c, -q.d}
}

// Opposite returns -a-bi-cj-dk.
func (q Quaternion) Opposite() Quaternion {
	return Quaternion{-q.a, -q.b, -q.c, -q.d}
}

func (q Quaternion) Plus(q2 Quaternion) Quaternion {
	return Quaternion{q.a + q2.a, q.b + q2.b, q.c + q2.c, q.d + q2.d}
}

func (q Quaternion) Minus(q2 Quaternion) Quaternion {
	return Quaternion{q.a - q2.a, q.b - q2.b, q.c - q2.c, q.d - q2.d}
}

// Times returns the Hamilton product q*q2. It is not commutative.
func (q Quaternion) Times(q2 Quaternion) Quaternion {
	return Quaternion{
		a: q.a*q2.a - q.b*q2.b - q.c*q2.c - q.d*q2.d,
		b: q.a*q2.b + q.b*q2.a + q.c*q2.d - q.d*q2.c,
		c: q.a*q2.c - q.b*q2.d + q.c*q2.a + q.d*q2.b,
		d: q.a*q2.d + q.b*q2.c - q.c*q2.b + q.d*q2.a,
	}
}

// Scale multiplies every component by r.
func (q Quaternion) Scale(r float64) Quaternion {
	return Quaternion{q.a * r, q.b * r, q.c * r, q.d * r}
}

func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.normSqr())
}

func (q Quaternion) normSqr() float64 {
	return q.a*q.a + q.b*q.b + q.c*q.c + q.d*q.d
}

// Inverse returns 1/q = conjugate(q)/norm(q)^2.
// It fails with ErrDivisionByZero if q.IsZero().
func (q Quaternion) Inverse() (Quaternion, error) {
	if q.IsZero() {
		return Quaternion{}, errors.Wrapf(ErrDivisionByZero, "inverse of %v", q)
	}
	return q.Conjugate().Scale(1 / q.normSqr()), nil
}

// DivideByRight returns q*inverse(q2).
func (q Quaternion) DivideByRight(q2 Quaternion) (Quaternion, error) {
	inv, err := q2.Inverse()
	if err != nil {
		return Quaternion{}, errors.Wrapf(err, "%v / %v", q, q2)
	}
	return q.Times(inv), nil
}

// DivideByLeft returns inverse(q2)*q.
func (q Quaternion) DivideByLeft(q2 Quaternion) (Quaternion, error) {
	inv, err := q2.Inverse()
	if err != nil {
		return Quaternion{}, errors.Wrapf(err, "%v \\ %v", q2, q)
	}
	return inv.Times(q), nil
}

// DotMult returns (q*conjugate(q2) + q2*conjugate(q))/2.
// The result is real and equals the 4D dot product of q and q2.
func (q Quaternion) DotMult(q2 Quaternion) Quaternion {
	return q.Times(q2.Conjugate()).Plus(q2.Times(q.Conjugate())).Scale(0.5)
}
