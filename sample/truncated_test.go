package sample

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncatedNormal_Bounds(t *testing.T) {
	tests := []struct {
		name         string
		lower, upper float64
		count        int
		mean, stddev float64
	}{
		{name: "elevation", lower: 0, upper: 1500, count: 200, mean: 200, stddev: 200},
		{name: "symmetric noise", lower: -50, upper: 50, count: 200, mean: 0, stddev: 25},
		{name: "narrow band", lower: -1, upper: 1, count: 200, mean: 0, stddev: 0.5},
		{name: "asymmetric band", lower: -1, upper: 2, count: 200, mean: 0.5, stddev: 0.75},
		{name: "mean outside bounds", lower: 0, upper: 10, count: 200, mean: -2, stddev: 5},
	}

	s := NewStream(42)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := TruncatedNormal(s, tt.lower, tt.upper, tt.count, tt.mean, tt.stddev)
			require.NoError(t, err)
			require.Len(t, values, tt.count)
			for i, v := range values {
				require.GreaterOrEqual(t, v, tt.lower, "value %d below lower bound", i)
				require.LessOrEqual(t, v, tt.upper, "value %d above upper bound", i)
			}
		})
	}
}

func TestTruncatedNormal_InvalidParameters(t *testing.T) {
	s := NewStream(1)

	t.Run("inverted bounds", func(t *testing.T) {
		_, err := TruncatedNormal(s, 10, 0, 5, 0, 1)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("equal bounds", func(t *testing.T) {
		_, err := TruncatedNormal(s, 1, 1, 5, 0, 1)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("non-positive stddev", func(t *testing.T) {
		_, err := TruncatedNormal(s, 0, 1, 5, 0, 0)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("negative count", func(t *testing.T) {
		_, err := TruncatedNormal(s, 0, 1, -1, 0, 1)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("bounds exclude probability mass", func(t *testing.T) {
		_, err := TruncatedNormal(s, 100, 101, 5, 0, 0.1)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestTruncatedNormal_ZeroCount(t *testing.T) {
	values, err := TruncatedNormal(NewStream(1), 0, 1, 0, 0.5, 0.2)
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestStream_Determinism(t *testing.T) {
	a := NewStream(10)
	b := NewStream(10)

	va, err := TruncatedNormal(a, 0, 1500, 20, 200, 200)
	require.NoError(t, err)
	vb, err := TruncatedNormal(b, 0, 1500, 20, 200, 200)
	require.NoError(t, err)
	require.Equal(t, va, vb, "same seed must reproduce the same draws")

	c := NewStream(11)
	vc, err := TruncatedNormal(c, 0, 1500, 20, 200, 200)
	require.NoError(t, err)
	require.NotEqual(t, va, vc, "different seeds must diverge")
}

func TestStream_IndependentCallsAdvance(t *testing.T) {
	s := NewStream(7)
	first, err := TruncatedNormal(s, -50, 50, 20, 0, 25)
	require.NoError(t, err)
	second, err := TruncatedNormal(s, -50, 50, 20, 0, 25)
	require.NoError(t, err)
	require.NotEqual(t, first, second, "consecutive calls must consume different stream positions")
}
