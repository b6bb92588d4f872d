package fit

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// tukeyConfidence is the confidence level of the pairwise intervals.
const tukeyConfidence = 0.95

// PairwiseComparison is one Tukey HSD group comparison. The difference is
// mean(B) − mean(A) with A before B lexicographically.
type PairwiseComparison struct {
	A, B string
	// Diff is the difference of group means, mean(B) − mean(A).
	Diff float64
	// Lower and Upper bound the family-wise confidence interval of Diff.
	Lower, Upper float64
	// AdjPValue is the multiplicity-adjusted p-value of the comparison.
	AdjPValue float64
}

// ANOVAModel is a fitted one-way analysis of variance with post-hoc
// pairwise comparisons.
type ANOVAModel struct {
	// Response and Group name the analyzed columns.
	Response, Group string
	// Groups holds the group labels in lexicographic order.
	Groups []string
	// Between/within decomposition of the variance.
	DFBetween, DFWithin int
	SSBetween, SSWithin float64
	MSBetween, MSWithin float64
	// FStat is MSBetween / MSWithin; PValue its upper-tail probability.
	FStat, PValue float64
	// Pairwise holds one comparison per unordered label pair, ordered
	// lexicographically by (A, B).
	Pairwise []PairwiseComparison
}

// FitANOVA fits a one-way analysis of variance of response by group and
// computes Tukey HSD pairwise comparisons for every unordered pair of
// group labels.
//
// Parameters:
//   - response: Response column
//   - group: Grouping column over a closed label set
//
// Returns:
//   - *ANOVAModel: Fitted model with the ANOVA table and C(k,2) pairwise rows
//   - error: ErrDataShape for mismatched row counts, ErrDegenerateFit for
//     fewer than two observed groups or zero within-group variance
func FitANOVA(response Continuous, group Categorical) (*ANOVAModel, error) {
	n := response.Rows()
	if n == 0 {
		return nil, fmt.Errorf("%w: response %q is empty", ErrDataShape, response.Name)
	}
	if group.Rows() != n {
		return nil, fmt.Errorf("%w: group %q has %d rows, response %q has %d",
			ErrDataShape, group.Name, group.Rows(), response.Name, n)
	}

	// Per-group counts and means, keyed by label.
	counts := make(map[string]int)
	sums := make(map[string]float64)
	for i := range n {
		if group.Index[i] < 0 || group.Index[i] >= len(group.Levels) {
			return nil, fmt.Errorf("%w: group %q row %d has level index %d outside [0, %d)",
				ErrDegenerateFit, group.Name, i, group.Index[i], len(group.Levels))
		}
		label := group.Label(i)
		counts[label]++
		sums[label] += response.Values[i]
	}
	if len(counts) < 2 {
		return nil, fmt.Errorf("%w: group %q has %d observed levels, need at least 2",
			ErrDegenerateFit, group.Name, len(counts))
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	means := make(map[string]float64, len(labels))
	grand := 0.0
	for _, label := range labels {
		means[label] = sums[label] / float64(counts[label])
		grand += sums[label]
	}
	grand /= float64(n)

	var ssBetween, ssWithin float64
	for _, label := range labels {
		d := means[label] - grand
		ssBetween += float64(counts[label]) * d * d
	}
	for i := range n {
		r := response.Values[i] - means[group.Label(i)]
		ssWithin += r * r
	}

	k := len(labels)
	dfBetween := k - 1
	dfWithin := n - k
	if dfWithin <= 0 {
		return nil, fmt.Errorf("%w: %d rows over %d groups leave no within-group degrees of freedom",
			ErrDegenerateFit, n, k)
	}
	msWithin := ssWithin / float64(dfWithin)
	if msWithin == 0 {
		return nil, fmt.Errorf("%w: zero within-group variance for response %q", ErrDegenerateFit, response.Name)
	}
	msBetween := ssBetween / float64(dfBetween)

	fstat := msBetween / msWithin
	fDist := distuv.F{D1: float64(dfBetween), D2: float64(dfWithin)}

	// Tukey-Kramer comparisons: family-wise critical value from the
	// studentized range, pairs in lexicographic order.
	crit := studentizedRangeQuantile(tukeyConfidence, k, float64(dfWithin))
	pairwise := make([]PairwiseComparison, 0, k*(k-1)/2)
	for i := range labels {
		for j := i + 1; j < len(labels); j++ {
			a, b := labels[i], labels[j]
			diff := means[b] - means[a]
			se := math.Sqrt(msWithin / 2 * (1/float64(counts[a]) + 1/float64(counts[b])))
			half := crit * se
			q := math.Abs(diff) / se
			pairwise = append(pairwise, PairwiseComparison{
				A:         a,
				B:         b,
				Diff:      diff,
				Lower:     diff - half,
				Upper:     diff + half,
				AdjPValue: 1 - studentizedRangeCDF(q, k, float64(dfWithin)),
			})
		}
	}

	return &ANOVAModel{
		Response:  response.Name,
		Group:     group.Name,
		Groups:    labels,
		DFBetween: dfBetween,
		DFWithin:  dfWithin,
		SSBetween: ssBetween,
		SSWithin:  ssWithin,
		MSBetween: msBetween,
		MSWithin:  msWithin,
		FStat:     fstat,
		PValue:    1 - fDist.CDF(fstat),
		Pairwise:  pairwise,
	}, nil
}

// Summary returns a human-readable ANOVA table plus the pairwise
// comparison table.
func (m *ANOVAModel) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "One-way ANOVA: %s by %s\n", m.Response, m.Group)
	fmt.Fprintf(&b, "%-12s %6s %12s %12s %10s %12s\n", "", "Df", "Sum Sq", "Mean Sq", "F value", "Pr(>F)")
	fmt.Fprintf(&b, "%-12s %6d %12.4f %12.4f %10.3f %12.4g\n",
		m.Group, m.DFBetween, m.SSBetween, m.MSBetween, m.FStat, m.PValue)
	fmt.Fprintf(&b, "%-12s %6d %12.4f %12.4f\n", "Residuals", m.DFWithin, m.SSWithin, m.MSWithin)
	fmt.Fprintf(&b, "Tukey HSD (%.0f%% family-wise CI):\n", tukeyConfidence*100)
	fmt.Fprintf(&b, "%-28s %10s %10s %10s %10s\n", "", "diff", "lwr", "upr", "p adj")
	for _, pc := range m.Pairwise {
		fmt.Fprintf(&b, "%-28s %10.4f %10.4f %10.4f %10.4g\n",
			pc.B+"-"+pc.A, pc.Diff, pc.Lower, pc.Upper, pc.AdjPValue)
	}

	return b.String()
}
