package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitOLS_ExactLine(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 2*xi + 1
	}

	model, err := FitOLS(
		Continuous{Name: "y", Values: y},
		Continuous{Name: "x", Values: x},
	)
	require.NoError(t, err)

	require.Len(t, model.Coefficients, 2)
	require.Equal(t, "(Intercept)", model.Coefficients[0].Name)
	require.Equal(t, "x", model.Coefficients[1].Name)
	require.InDelta(t, 1.0, model.Coefficients[0].Estimate, 1e-8)
	require.InDelta(t, 2.0, model.Coefficients[1].Estimate, 1e-8)
	require.InDelta(t, 1.0, model.RSquared, 1e-10)
	require.Equal(t, len(x), model.N)
	require.Equal(t, len(x)-2, model.DFResidual)
}

func TestFitOLS_PerturbedLine(t *testing.T) {
	// y = 3x - 1 with a small alternating perturbation; the estimates
	// stay close to the generating slope and intercept and the fit
	// statistics become well defined.
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	y := make([]float64, len(x))
	for i, xi := range x {
		perturbation := 0.5
		if i%2 == 1 {
			perturbation = -0.5
		}
		y[i] = 3*xi - 1 + perturbation
	}

	model, err := FitOLS(
		Continuous{Name: "y", Values: y},
		Continuous{Name: "x", Values: x},
	)
	require.NoError(t, err)

	slope := model.Coefficients[1]
	require.InDelta(t, 3.0, slope.Estimate, 0.1)
	require.Greater(t, slope.StdErr, 0.0)
	require.Less(t, slope.PValue, 1e-6)
	require.Greater(t, model.RSquared, 0.99)
	require.Greater(t, model.AdjRSquared, 0.99)
	require.Less(t, model.AdjRSquared, model.RSquared)

	// With a single predictor the overall F equals the squared t.
	require.InDelta(t, slope.TValue*slope.TValue, model.FStat, 1e-6*model.FStat)
	require.GreaterOrEqual(t, model.FPValue, 0.0)
	require.LessOrEqual(t, model.FPValue, 1.0)
}

func TestFitOLS_CategoricalPredictor(t *testing.T) {
	// Response is 1 + 2x with a +5 shift for level B: the indicator
	// coefficient recovers the shift exactly.
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	group := Categorical{
		Name:   "g",
		Levels: []string{"A", "B"},
		Index:  []int{0, 1, 0, 1, 0, 1, 0, 1},
	}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 1 + 2*xi + 5*float64(group.Index[i])
	}

	model, err := FitOLS(
		Continuous{Name: "y", Values: y},
		Continuous{Name: "x", Values: x},
		group,
	)
	require.NoError(t, err)

	require.Len(t, model.Coefficients, 3)
	require.Equal(t, "g[B]", model.Coefficients[2].Name)
	require.InDelta(t, 1.0, model.Coefficients[0].Estimate, 1e-8)
	require.InDelta(t, 2.0, model.Coefficients[1].Estimate, 1e-8)
	require.InDelta(t, 5.0, model.Coefficients[2].Estimate, 1e-8)
}

func TestFitOLS_Errors(t *testing.T) {
	y := Continuous{Name: "y", Values: []float64{1, 2, 3, 4, 5}}

	t.Run("mismatched lengths", func(t *testing.T) {
		_, err := FitOLS(y, Continuous{Name: "x", Values: []float64{1, 2, 3}})
		require.ErrorIs(t, err, ErrDataShape)
		require.ErrorContains(t, err, "x")
	})

	t.Run("zero-variance predictor", func(t *testing.T) {
		_, err := FitOLS(y, Continuous{Name: "flat", Values: []float64{2, 2, 2, 2, 2}})
		require.ErrorIs(t, err, ErrDegenerateFit)
		require.ErrorContains(t, err, "flat")
	})

	t.Run("empty response", func(t *testing.T) {
		_, err := FitOLS(Continuous{Name: "y"}, Continuous{Name: "x", Values: []float64{1}})
		require.ErrorIs(t, err, ErrDataShape)
	})

	t.Run("no predictors", func(t *testing.T) {
		_, err := FitOLS(y)
		require.ErrorIs(t, err, ErrDegenerateFit)
	})

	t.Run("too few rows", func(t *testing.T) {
		_, err := FitOLS(
			Continuous{Name: "y", Values: []float64{1, 2}},
			Continuous{Name: "x", Values: []float64{1, 2}},
		)
		require.ErrorIs(t, err, ErrDegenerateFit)
	})

	t.Run("constant response", func(t *testing.T) {
		_, err := FitOLS(
			Continuous{Name: "y", Values: []float64{3, 3, 3, 3, 3}},
			Continuous{Name: "x", Values: []float64{1, 2, 3, 4, 5}},
		)
		require.ErrorIs(t, err, ErrDegenerateFit)
	})

	t.Run("single-level categorical", func(t *testing.T) {
		_, err := FitOLS(y, Categorical{Name: "g", Levels: []string{"A"}, Index: []int{0, 0, 0, 0, 0}})
		require.ErrorIs(t, err, ErrDegenerateFit)
	})

	t.Run("level index out of range", func(t *testing.T) {
		_, err := FitOLS(y, Categorical{Name: "g", Levels: []string{"A", "B"}, Index: []int{0, 1, 2, 0, 1}})
		require.ErrorIs(t, err, ErrDegenerateFit)
	})
}

func TestLinearModel_SlopeAndSummary(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 11.9}

	model, err := FitOLS(
		Continuous{Name: "y", Values: y},
		Continuous{Name: "x", Values: x},
	)
	require.NoError(t, err)

	slope, ok := model.Slope("x")
	require.True(t, ok)
	require.InDelta(t, 2.0, slope, 0.1)

	_, ok = model.Slope("missing")
	require.False(t, ok)

	summary := model.Summary()
	require.Contains(t, summary, "OLS regression: y")
	require.Contains(t, summary, "(Intercept)")
	require.Contains(t, summary, "R-squared")
	require.False(t, math.IsNaN(model.FStat))
}
