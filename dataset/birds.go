package dataset

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ttrotto/DataSimulator/sample"
)

// Bird count sampling parameters. Cedar is the independently sampled base
// count; fir and hemlock are derived from it. The derived-count noise
// bounds are asymmetric per species (fir [-1, 1], hemlock [-1, 2]); the
// asymmetry comes from the source formulation and is kept as-is.
const (
	CedarLower  = 0.0
	CedarUpper  = 15.0
	cedarMean   = 6.0
	cedarStddev = 3.0

	// FirFactor and HemlockFactor define fir ≈ 3·cedar and hemlock ≈ 1·cedar.
	FirFactor     = 3.0
	HemlockFactor = 1.0

	FirNoiseLower  = -1.0
	FirNoiseUpper  = 1.0
	firNoiseMean   = 0.0
	firNoiseStddev = 0.5

	HemlockNoiseLower  = -1.0
	HemlockNoiseUpper  = 2.0
	hemlockNoiseMean   = 0.5
	hemlockNoiseStddev = 0.75
)

// BirdDensity holds per-plot bird counts for three tree species.
//
// Counts are integer-rounded: cedar is a rounded truncated-normal draw,
// fir and hemlock are linear transforms of cedar with independently drawn
// noise, rounded after the noise is added. Each derived column uses its
// own sampling call, so no two columns share a draw.
type BirdDensity struct {
	Cedar   []int
	Fir     []int
	Hemlock []int
}

// Observation is one row of the long-form bird table: a tree species
// label and the bird count observed for it.
type Observation struct {
	Tree  Species
	Birds int
}

// NewBirdDensity synthesizes the bird density table.
//
// Parameters:
//   - s: Stream supplying randomness, consumed in fixed order
//   - rows: Number of rows per species column, must be positive
//
// Returns:
//   - *BirdDensity: Synthesized table
//   - error: Sampling configuration error, or invalid row count
func NewBirdDensity(s *sample.Stream, rows int) (*BirdDensity, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: rows %d must be positive", sample.ErrInvalidParameter, rows)
	}

	cedarBase, err := sample.TruncatedNormal(s, CedarLower, CedarUpper, rows, cedarMean, cedarStddev)
	if err != nil {
		return nil, fmt.Errorf("sample cedar counts: %w", err)
	}

	firNoise, err := sample.TruncatedNormal(s, FirNoiseLower, FirNoiseUpper, rows, firNoiseMean, firNoiseStddev)
	if err != nil {
		return nil, fmt.Errorf("sample fir noise: %w", err)
	}

	hemlockNoise, err := sample.TruncatedNormal(s, HemlockNoiseLower, HemlockNoiseUpper, rows, hemlockNoiseMean, hemlockNoiseStddev)
	if err != nil {
		return nil, fmt.Errorf("sample hemlock noise: %w", err)
	}

	ds := &BirdDensity{
		Cedar:   make([]int, rows),
		Fir:     make([]int, rows),
		Hemlock: make([]int, rows),
	}

	for i := range rows {
		cedar := math.Round(cedarBase[i])
		ds.Cedar[i] = int(cedar)
		// Round after noise addition; rounding the base term first would
		// discretize the noise into the count incorrectly.
		ds.Fir[i] = int(math.Round(cedar*FirFactor + firNoise[i]))
		ds.Hemlock[i] = int(math.Round(cedar*HemlockFactor + hemlockNoise[i]))
	}

	return ds, nil
}

// Rows returns the number of rows per species column.
func (d *BirdDensity) Rows() int {
	return len(d.Cedar)
}

// Longform reshapes the wide table into 3·rows observations.
//
// Rows are interleaved across species so that observation i carries the
// label AllSpecies()[i mod 3] and the count from row i/3 of that species
// column. The interleaving makes the species assignment perfectly cyclic,
// matching the climate column of the elevation table.
func (d *BirdDensity) Longform() []Observation {
	species := AllSpecies()
	columns := [][]int{d.Cedar, d.Fir, d.Hemlock}

	obs := make([]Observation, 0, d.Rows()*len(species))
	for i := range d.Rows() * len(species) {
		obs = append(obs, Observation{
			Tree:  species[i%len(species)],
			Birds: columns[i%len(species)][i/len(species)],
		})
	}

	return obs
}

// Records returns the long-form table as CSV-ready column names and rows.
func (d *BirdDensity) Records() ([]string, [][]string) {
	columns := []string{"tree", "birds"}
	obs := d.Longform()
	rows := make([][]string, len(obs))
	for i, o := range obs {
		rows[i] = []string{o.Tree.String(), strconv.Itoa(o.Birds)}
	}

	return columns, rows
}
