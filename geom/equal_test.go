package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsZero(t *testing.T) {
	require.True(t, New(0, 0, 0, 0).IsZero())
	require.True(t, New(9e-9, -9e-9, 0, 1e-12).IsZero())
	require.False(t, New(0, 0, 0, 1e-8).IsZero())
	require.False(t, New(-0.5, 0, 0, 0).IsZero())
}

func TestEqual(t *testing.T) {
	require.True(t, q1.Equal(q1))
	require.True(t, q1.Equal(New(-1+1e-9, 1, 2, -2-1e-9)))
	require.False(t, q1.Equal(New(-1, 1, 2, -2.0001)))
	require.False(t, q1.Equal(q2))
	require.True(t, New(0, 0, 0, 0).Equal(New(math.Copysign(0, -1), 0, 0, 0)))
}

func TestHash(t *testing.T) {
	negZero := math.Copysign(0, -1)

	tests := []struct {
		name   string
		q1, q2 Quaternion
	}{
		{"same", q1, New(-1, 1, 2, -2)},
		{"negative zero", New(0, 0, 0, 0), New(negZero, negZero, 0, negZero)},
		{"rounding", New(0.1+0.2, 1, 1, 1), New(0.3, 1, 1, 1)},
		{"below epsilon", New(1, 2, 3, 4), New(1+1e-10, 2, 3-1e-10, 4)},
		{"parsed", q1, MustParse(q1.String())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.q1.Equal(tt.q2))
			require.Equal(t, tt.q1.Hash(), tt.q2.Hash())
		})
	}

	require.NotEqual(t, q1.Hash(), q2.Hash())
	require.NotEqual(t, New(1, 0, 0, 0).Hash(), New(0, 1, 0, 0).Hash())
}
