package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ttrotto/DataSimulator/sample"
)

func TestNewBirdDensity_DerivedCounts(t *testing.T) {
	ds, err := NewBirdDensity(sample.NewStream(10), 20)
	require.NoError(t, err)
	require.Equal(t, 20, ds.Rows())

	for i := range ds.Rows() {
		require.GreaterOrEqual(t, ds.Cedar[i], 0)
		require.LessOrEqual(t, ds.Cedar[i], int(CedarUpper))

		// fir = round(3·cedar + noise), noise in [-1, 1]: the count can
		// land at most one off the exact multiple.
		firDelta := ds.Fir[i] - 3*ds.Cedar[i]
		require.GreaterOrEqual(t, firDelta, -1, "row %d", i)
		require.LessOrEqual(t, firDelta, 1, "row %d", i)

		// hemlock = round(cedar + noise), noise in [-1, 2].
		hemlockDelta := ds.Hemlock[i] - ds.Cedar[i]
		require.GreaterOrEqual(t, hemlockDelta, -1, "row %d", i)
		require.LessOrEqual(t, hemlockDelta, 2, "row %d", i)
	}
}

func TestNewBirdDensity_Determinism(t *testing.T) {
	a, err := NewBirdDensity(sample.NewStream(10), 20)
	require.NoError(t, err)
	b, err := NewBirdDensity(sample.NewStream(10), 20)
	require.NoError(t, err)

	require.Equal(t, a.Cedar, b.Cedar)
	require.Equal(t, a.Fir, b.Fir)
	require.Equal(t, a.Hemlock, b.Hemlock)
}

func TestBirdDensity_Longform(t *testing.T) {
	ds, err := NewBirdDensity(sample.NewStream(10), 20)
	require.NoError(t, err)

	obs := ds.Longform()
	require.Len(t, obs, 60)

	species := AllSpecies()
	columns := [][]int{ds.Cedar, ds.Fir, ds.Hemlock}
	for i, o := range obs {
		require.Equal(t, species[i%3], o.Tree, "row %d label not cyclic", i)
		require.Equal(t, columns[i%3][i/3], o.Birds, "row %d value mismatch", i)
	}
}

func TestBirdDensity_Records(t *testing.T) {
	ds, err := NewBirdDensity(sample.NewStream(10), 4)
	require.NoError(t, err)

	columns, rows := ds.Records()
	require.Equal(t, []string{"tree", "birds"}, columns)
	require.Len(t, rows, 12)
	require.Equal(t, "Cedar", rows[0][0])
	require.Equal(t, "Douglas-fir", rows[1][0])
	require.Equal(t, "Hemlock", rows[2][0])
}

func TestNewBirdDensity_InvalidRows(t *testing.T) {
	_, err := NewBirdDensity(sample.NewStream(1), 0)
	require.ErrorIs(t, err, sample.ErrInvalidParameter)
}

func TestCategoryStrings(t *testing.T) {
	require.Equal(t, "Wet", ClimateWet.String())
	require.Equal(t, "Moderate", ClimateModerate.String())
	require.Equal(t, "Dry", ClimateDry.String())
	require.Equal(t, "Unknown", Climate(0).String())

	require.Equal(t, "Cedar", SpeciesCedar.String())
	require.Equal(t, "Douglas-fir", SpeciesDouglasFir.String())
	require.Equal(t, "Hemlock", SpeciesHemlock.String())
	require.Equal(t, "Unknown", Species(0).String())
}
