package geom

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// String returns q in the form "a+bi+cj+dk", e.g. "-1.0+1.0+2.0-2.0".
// Components use the shortest decimal that round-trips, never an exponent.
func (q Quaternion) String() string {
	var sb strings.Builder
	for i, v := range q.Components() {
		if v == 0 {
			v = 0 // -0
		}
		if i > 0 && v >= 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(formatComponent(v))
	}
	return sb.String()
}

func formatComponent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") { // NaN, Inf
		s += ".0"
	}
	return s
}

// Parse converts a string produced by String back to a Quaternion.
// Every '+' or '-' after the first character starts a new component, so
// exponent notation such as "1e-3" is not accepted.
func Parse(s string) (Quaternion, error) {
	s = strings.TrimSpace(s)
	var tokens []string
	start := 0
	for i := 1; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' {
			tokens = append(tokens, s[start:i])
			start = i
		}
	}
	if len(s) > 0 {
		tokens = append(tokens, s[start:])
	}
	if len(tokens) != 4 {
		return Quaternion{}, errors.Wrapf(ErrParse, "%q: expected 4 components, got %d", s, len(tokens))
	}

	var v [4]float64
	for i, tok := range tokens {
		if !isDecimal(tok) {
			return Quaternion{}, errors.Wrapf(ErrParse, "%q: bad component %q", s, tok)
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Quaternion{}, errors.Wrapf(ErrParse, "%q: %v", s, err)
		}
		v[i] = f
	}
	return New(v[0], v[1], v[2], v[3]), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Quaternion {
	q, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return q
}

// isDecimal accepts [+-]digits[.digits] with at least one digit.
func isDecimal(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	digits, dot := 0, false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

func (q Quaternion) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

func (q *Quaternion) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (q Quaternion) MarshalYAML() (interface{}, error) {
	return q.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *Quaternion) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return q.UnmarshalText([]byte(s))
}
