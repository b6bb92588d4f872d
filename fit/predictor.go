// Package fit estimates linear models over synthesized datasets: ordinary
// least squares with mixed continuous and categorical predictors, and
// one-way analysis of variance with Tukey HSD pairwise comparisons.
//
// Fitted models are read-only once produced and are consumed only for
// reporting. Categorical predictors are closed label sets fixed at
// dataset-construction time, so dummy expansion is a static transform.
package fit

import "fmt"

// Continuous is a named numeric column.
type Continuous struct {
	Name   string
	Values []float64
}

// Categorical is a named categorical column over a closed, ordered label
// set. Index[i] selects the level of row i from Levels; the first level is
// the reference dropped during dummy expansion.
type Categorical struct {
	Name   string
	Levels []string
	Index  []int
}

// Predictor is a column that can expand itself into one or more numeric
// design-matrix columns.
type Predictor interface {
	// expand returns the design column names and values for this predictor.
	expand() (names []string, columns [][]float64, err error)
}

func (c Continuous) expand() ([]string, [][]float64, error) {
	return []string{c.Name}, [][]float64{c.Values}, nil
}

// Rows returns the row count of the column.
func (c Continuous) Rows() int { return len(c.Values) }

// expand produces one indicator column per non-reference level.
func (c Categorical) expand() ([]string, [][]float64, error) {
	if len(c.Levels) < 2 {
		return nil, nil, fmt.Errorf("%w: categorical %q needs at least 2 levels, got %d",
			ErrDegenerateFit, c.Name, len(c.Levels))
	}

	names := make([]string, 0, len(c.Levels)-1)
	columns := make([][]float64, 0, len(c.Levels)-1)
	for _, level := range c.Levels[1:] {
		names = append(names, fmt.Sprintf("%s[%s]", c.Name, level))
		columns = append(columns, make([]float64, len(c.Index)))
	}

	for i, idx := range c.Index {
		if idx < 0 || idx >= len(c.Levels) {
			return nil, nil, fmt.Errorf("%w: categorical %q row %d has level index %d outside [0, %d)",
				ErrDegenerateFit, c.Name, i, idx, len(c.Levels))
		}
		if idx > 0 {
			columns[idx-1][i] = 1
		}
	}

	return names, columns, nil
}

// Rows returns the row count of the column.
func (c Categorical) Rows() int { return len(c.Index) }

// Label returns the level name of row i.
func (c Categorical) Label(i int) string {
	return c.Levels[c.Index[i]]
}
