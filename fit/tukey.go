package fit

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Quadrature node counts for the studentized-range integrals. The inner
// integral runs over the location of the maximum group mean, the outer
// over the scale factor contributed by the within-group variance estimate.
const (
	rangeInnerNodes = 128
	rangeOuterNodes = 96

	// rangeInnerHalfWidth bounds the inner integral; the standard-normal
	// integrand is negligible beyond ±8.
	rangeInnerHalfWidth = 8.0

	// scaleUpperBound bounds the outer integral over s = sqrt(chi²_df/df);
	// the scale density is negligible beyond this for df ≥ 3.
	scaleUpperBound = 5.0

	// largeDF is the degrees-of-freedom cutoff beyond which the scale
	// factor is treated as exactly 1.
	largeDF = 5000
)

// stdNormPDF is the standard normal density.
func stdNormPDF(z float64) float64 {
	return math.Exp(-0.5*z*z) / math.Sqrt(2*math.Pi)
}

// stdNormCDF is the standard normal distribution function.
func stdNormCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// normalRangeCDF returns P(W ≤ w) for the range W of k independent
// standard normal variables:
//
//	P(W ≤ w) = k ∫ φ(z) [Φ(z) − Φ(z−w)]^(k−1) dz
//
// where z runs over the location of the maximum.
func normalRangeCDF(w float64, k int) float64 {
	if w <= 0 {
		return 0
	}

	integrand := func(z float64) float64 {
		return stdNormPDF(z) * math.Pow(stdNormCDF(z)-stdNormCDF(z-w), float64(k-1))
	}
	p := float64(k) * quad.Fixed(integrand, -rangeInnerHalfWidth, rangeInnerHalfWidth, rangeInnerNodes, nil, 0)

	return math.Min(1, math.Max(0, p))
}

// studentizedRangeCDF returns P(Q ≤ q) for the studentized range of k
// group means with df within-group degrees of freedom.
//
// The statistic is Q = W / S where W is the range of k standard normals
// and S² ~ χ²_df / df, so the distribution function integrates the
// normal-range CDF over the density of S:
//
//	P(Q ≤ q) = ∫₀^∞ f_S(s) · P(W ≤ q·s) ds
//	f_S(s) = df^(df/2) / (Γ(df/2) 2^(df/2−1)) · s^(df−1) e^(−df·s²/2)
func studentizedRangeCDF(q float64, k int, df float64) float64 {
	if q <= 0 {
		return 0
	}
	if df >= largeDF {
		return normalRangeCDF(q, k)
	}

	lgamma, _ := math.Lgamma(df / 2)
	logNorm := (df/2)*math.Log(df) - lgamma - (df/2-1)*math.Ln2

	integrand := func(s float64) float64 {
		if s <= 0 {
			return 0
		}
		logDensity := logNorm + (df-1)*math.Log(s) - df*s*s/2

		return math.Exp(logDensity) * normalRangeCDF(q*s, k)
	}
	p := quad.Fixed(integrand, 0, scaleUpperBound, rangeOuterNodes, nil, 0)

	return math.Min(1, math.Max(0, p))
}

// studentizedRangeQuantile returns the q value with P(Q ≤ q) = p, found
// by bisection on the distribution function.
func studentizedRangeQuantile(p float64, k int, df float64) float64 {
	lo, hi := 0.0, 100.0
	for range 200 {
		mid := (lo + hi) / 2
		if studentizedRangeCDF(mid, k, df) < p {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < 1e-10 {
			break
		}
	}

	return (lo + hi) / 2
}
