package dataset

import (
	"fmt"
	"strconv"

	"github.com/ttrotto/DataSimulator/sample"
)

// Elevation sampling and harvesting relationship parameters.
const (
	ElevationLower  = 0.0
	ElevationUpper  = 1500.0
	ElevationMean   = 200.0
	ElevationStddev = 200.0

	// HarvestSlope and HarvestIntercept define the deterministic
	// harvesting = elevation*(-1/6) + 120 relationship.
	HarvestSlope     = -1.0 / 6.0
	HarvestIntercept = 120.0

	// HarvestNoiseBound bounds the per-row noise added to the noisy
	// harvesting column: harvesting_random - harvesting is in
	// [-HarvestNoiseBound, HarvestNoiseBound].
	HarvestNoiseBound  = 50.0
	harvestNoiseMean   = 0.0
	harvestNoiseStddev = 25.0
)

// ElevationHarvest holds the elevation vs. timber harvesting table.
//
// Columns share one row index: Elevation is the sampled independent
// variable, Harvesting its exact linear transform, HarvestingRandom the
// same transform plus bounded per-row noise, and Climate a cyclically
// assigned category. The table is immutable once built.
type ElevationHarvest struct {
	Elevation        []float64
	Harvesting       []float64
	HarvestingRandom []float64
	Climate          []Climate
}

// NewElevationHarvest synthesizes the elevation vs. harvesting table.
//
// Elevation is drawn from a truncated normal on [0, 1500]; harvesting is
// derived exactly as elevation*(-1/6) + 120; harvesting_random adds noise
// drawn from a second, independent truncated-normal call on the same
// stream, so the two derived columns never share a draw. Climate labels
// are assigned cyclically: row i gets Climates()[i mod 3].
//
// Parameters:
//   - s: Stream supplying randomness, consumed in fixed order
//   - rows: Number of rows to synthesize, must be positive
//
// Returns:
//   - *ElevationHarvest: Synthesized table
//   - error: Sampling configuration error, or invalid row count
func NewElevationHarvest(s *sample.Stream, rows int) (*ElevationHarvest, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: rows %d must be positive", sample.ErrInvalidParameter, rows)
	}

	elevation, err := sample.TruncatedNormal(s, ElevationLower, ElevationUpper, rows, ElevationMean, ElevationStddev)
	if err != nil {
		return nil, fmt.Errorf("sample elevation: %w", err)
	}

	noise, err := sample.TruncatedNormal(s, -HarvestNoiseBound, HarvestNoiseBound, rows, harvestNoiseMean, harvestNoiseStddev)
	if err != nil {
		return nil, fmt.Errorf("sample harvesting noise: %w", err)
	}

	ds := &ElevationHarvest{
		Elevation:        elevation,
		Harvesting:       make([]float64, rows),
		HarvestingRandom: make([]float64, rows),
		Climate:          make([]Climate, rows),
	}

	climates := Climates()
	for i := range rows {
		ds.Harvesting[i] = elevation[i]*HarvestSlope + HarvestIntercept
		ds.HarvestingRandom[i] = ds.Harvesting[i] + noise[i]
		ds.Climate[i] = climates[i%len(climates)]
	}

	return ds, nil
}

// Rows returns the number of rows in the table.
func (d *ElevationHarvest) Rows() int {
	return len(d.Elevation)
}

// Records returns the table as CSV-ready column names and string rows.
func (d *ElevationHarvest) Records() ([]string, [][]string) {
	columns := []string{"elevation", "harvesting", "harvesting_random", "climate"}
	rows := make([][]string, d.Rows())
	for i := range rows {
		rows[i] = []string{
			strconv.FormatFloat(d.Elevation[i], 'g', -1, 64),
			strconv.FormatFloat(d.Harvesting[i], 'g', -1, 64),
			strconv.FormatFloat(d.HarvestingRandom[i], 'g', -1, 64),
			d.Climate[i].String(),
		}
	}

	return columns, rows
}
