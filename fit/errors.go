package fit

import "errors"

var (
	// ErrDataShape reports response and predictor columns with mismatched
	// row counts feeding a model fit.
	ErrDataShape = errors.New("mismatched column lengths")

	// ErrDegenerateFit reports a fit that cannot be estimated: a
	// zero-variance predictor, a singular design matrix, or too few rows
	// for the number of coefficients.
	ErrDegenerateFit = errors.New("degenerate model fit")
)
