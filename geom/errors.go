package geom

import "github.com/cockroachdb/errors"

var (
	// ErrParse is returned when a string is not in the a+bi+cj+dk form.
	ErrParse = errors.New("invalid quaternion string")

	// ErrDivisionByZero is returned when inverting or dividing by a zero quaternion.
	ErrDivisionByZero = errors.New("division by zero quaternion")
)
