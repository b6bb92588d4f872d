package sample

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// minTruncationMass is the smallest acceptable probability mass inside
// [lower, upper]. Below this the bounds exclude essentially the whole
// distribution and rejection sampling would spin; that is a configuration
// error, not a condition to push through.
const minTruncationMass = 1e-6

// TruncatedNormal draws count values from a normal distribution restricted
// to [lower, upper].
//
// Values are drawn by rejection: a candidate outside the bounds is
// discarded and redrawn, which preserves the truncated distribution's
// shape. Candidates are never clipped to the bounds, since clipping piles
// probability mass onto the boundary values.
//
// Parameters:
//   - s: Stream supplying randomness; consumed in draw order
//   - lower: Inclusive lower bound
//   - upper: Inclusive upper bound, must exceed lower
//   - count: Number of values to draw, must be non-negative
//   - mean: Mean of the untruncated normal
//   - stddev: Standard deviation of the untruncated normal, must be positive
//
// Returns:
//   - []float64: count values, each within [lower, upper]
//   - error: ErrInvalidParameter for bad bounds, moments, or count
func TruncatedNormal(s *Stream, lower, upper float64, count int, mean, stddev float64) ([]float64, error) {
	if lower >= upper {
		return nil, fmt.Errorf("%w: lower bound %v must be below upper bound %v", ErrInvalidParameter, lower, upper)
	}
	if stddev <= 0 {
		return nil, fmt.Errorf("%w: stddev %v must be positive", ErrInvalidParameter, stddev)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: count %d must be non-negative", ErrInvalidParameter, count)
	}

	dist := distuv.Normal{Mu: mean, Sigma: stddev, Src: s}

	mass := dist.CDF(upper) - dist.CDF(lower)
	if mass < minTruncationMass {
		return nil, fmt.Errorf("%w: bounds [%v, %v] exclude nearly all probability mass for mean=%v stddev=%v",
			ErrInvalidParameter, lower, upper, mean, stddev)
	}

	values := make([]float64, count)
	for i := range count {
		for {
			v := dist.Rand()
			if v >= lower && v <= upper {
				values[i] = v
				break
			}
		}
	}

	return values, nil
}
