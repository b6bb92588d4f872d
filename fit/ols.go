package fit

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Coefficient is one estimated model term.
type Coefficient struct {
	// Name is the design column name ("(Intercept)", a continuous column
	// name, or "column[level]" for an indicator column).
	Name string
	// Estimate is the least-squares coefficient estimate.
	Estimate float64
	// StdErr is the standard error of the estimate.
	StdErr float64
	// TValue is Estimate / StdErr.
	TValue float64
	// PValue is the two-sided p-value of the t statistic.
	PValue float64
}

// LinearModel is a fitted ordinary least-squares regression.
type LinearModel struct {
	// Response is the response column name.
	Response string
	// Coefficients holds the intercept followed by one entry per design column.
	Coefficients []Coefficient
	// RSquared is the coefficient of determination.
	RSquared float64
	// AdjRSquared is RSquared penalized for model size.
	AdjRSquared float64
	// FStat is the overall F statistic against the intercept-only model.
	FStat float64
	// FPValue is the p-value of FStat.
	FPValue float64
	// ResidualStdErr is the residual standard error.
	ResidualStdErr float64
	// N is the number of rows.
	N int
	// DFResidual is the residual degrees of freedom.
	DFResidual int
}

// FitOLS fits an ordinary least-squares regression of response on the
// given predictors plus an intercept.
//
// Predictors may mix continuous and categorical columns; categorical
// columns are expanded to indicator variables with the first level as the
// dropped reference.
//
// Parameters:
//   - response: Response column
//   - predictors: One or more predictor columns
//
// Returns:
//   - *LinearModel: Fitted model with estimates, standard errors,
//     t/F statistics, p-values and R²
//   - error: ErrDataShape for mismatched row counts, ErrDegenerateFit for
//     zero-variance predictors, singular designs, or too few rows
func FitOLS(response Continuous, predictors ...Predictor) (*LinearModel, error) {
	n := response.Rows()
	if n == 0 {
		return nil, fmt.Errorf("%w: response %q is empty", ErrDataShape, response.Name)
	}
	if len(predictors) == 0 {
		return nil, fmt.Errorf("%w: no predictors for response %q", ErrDegenerateFit, response.Name)
	}

	names := []string{"(Intercept)"}
	columns := [][]float64{nil} // intercept column is implicit
	for _, p := range predictors {
		pnames, pcols, err := p.expand()
		if err != nil {
			return nil, err
		}
		for j, col := range pcols {
			if len(col) != n {
				return nil, fmt.Errorf("%w: predictor %q has %d rows, response %q has %d",
					ErrDataShape, pnames[j], len(col), response.Name, n)
			}
			if columnVariance(col) == 0 {
				return nil, fmt.Errorf("%w: predictor %q has zero variance", ErrDegenerateFit, pnames[j])
			}
		}
		names = append(names, pnames...)
		columns = append(columns, pcols...)
	}

	p := len(names)
	dfResidual := n - p
	if dfResidual <= 0 {
		return nil, fmt.Errorf("%w: %d rows cannot estimate %d coefficients", ErrDegenerateFit, n, p)
	}

	design := mat.NewDense(n, p, nil)
	for i := range n {
		design.Set(i, 0, 1)
		for j := 1; j < p; j++ {
			design.Set(i, j, columns[j][i])
		}
	}
	y := mat.NewVecDense(n, response.Values)

	var qr mat.QR
	qr.Factorize(design)

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, y); err != nil {
		return nil, fmt.Errorf("%w: singular design matrix: %v", ErrDegenerateFit, err)
	}

	// Residual and total sums of squares.
	var fitted mat.VecDense
	fitted.MulVec(design, &beta)
	meanY := 0.0
	for i := range n {
		meanY += response.Values[i]
	}
	meanY /= float64(n)

	var sse, sst float64
	for i := range n {
		r := response.Values[i] - fitted.AtVec(i)
		sse += r * r
		d := response.Values[i] - meanY
		sst += d * d
	}
	if sst == 0 {
		return nil, fmt.Errorf("%w: response %q has zero variance", ErrDegenerateFit, response.Name)
	}

	sigma2 := sse / float64(dfResidual)

	// Coefficient covariance: sigma² (XᵀX)⁻¹.
	var xtx, xtxInv mat.Dense
	xtx.Mul(design.T(), design)
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("%w: singular design matrix: %v", ErrDegenerateFit, err)
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dfResidual)}
	coefficients := make([]Coefficient, p)
	for j := range p {
		estimate := beta.AtVec(j)
		stderr := math.Sqrt(sigma2 * xtxInv.At(j, j))
		tval := estimate / stderr
		coefficients[j] = Coefficient{
			Name:     names[j],
			Estimate: estimate,
			StdErr:   stderr,
			TValue:   tval,
			PValue:   2 * tDist.CDF(-math.Abs(tval)),
		}
	}

	r2 := 1 - sse/sst
	dfModel := p - 1
	fstat := ((sst - sse) / float64(dfModel)) / sigma2
	fDist := distuv.F{D1: float64(dfModel), D2: float64(dfResidual)}

	return &LinearModel{
		Response:       response.Name,
		Coefficients:   coefficients,
		RSquared:       r2,
		AdjRSquared:    1 - (1-r2)*float64(n-1)/float64(dfResidual),
		FStat:          fstat,
		FPValue:        1 - fDist.CDF(fstat),
		ResidualStdErr: math.Sqrt(sigma2),
		N:              n,
		DFResidual:     dfResidual,
	}, nil
}

// Slope returns the estimate of the named coefficient and whether it exists.
func (m *LinearModel) Slope(name string) (float64, bool) {
	for _, c := range m.Coefficients {
		if c.Name == name {
			return c.Estimate, true
		}
	}

	return 0, false
}

// Summary returns a human-readable fit summary in the style of a
// regression table.
func (m *LinearModel) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "OLS regression: %s\n", m.Response)
	fmt.Fprintf(&b, "%-24s %12s %12s %10s %12s\n", "", "Estimate", "Std.Err", "t value", "Pr(>|t|)")
	for _, c := range m.Coefficients {
		fmt.Fprintf(&b, "%-24s %12.4f %12.4f %10.3f %12.4g\n",
			c.Name, c.Estimate, c.StdErr, c.TValue, c.PValue)
	}
	fmt.Fprintf(&b, "Residual std. error: %.4f on %d degrees of freedom\n", m.ResidualStdErr, m.DFResidual)
	fmt.Fprintf(&b, "R-squared: %.4f, adjusted: %.4f\n", m.RSquared, m.AdjRSquared)
	fmt.Fprintf(&b, "F(%d, %d) = %.3f, p = %.4g\n",
		len(m.Coefficients)-1, m.DFResidual, m.FStat, m.FPValue)

	return b.String()
}

// columnVariance returns the population variance of a column.
func columnVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}

	return variance / float64(len(values))
}
