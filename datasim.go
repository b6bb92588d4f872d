// Package datasim synthesizes two toy ecology datasets, fits linear models
// and a one-way ANOVA over them, and exports figures and dataset snapshots.
//
// The pipeline is a single forward pass: a seeded sample stream feeds the
// dataset synthesizers, the fitted models and figures consume the
// synthesized tables, and the exporter writes the artifacts. One seed
// value determines every number and byte a run produces.
//
// # Basic Usage
//
//	result, err := datasim.Run(
//	    datasim.WithSeed(10),
//	    datasim.WithOutputDir("out"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.HarvestTrend.Summary())
//	fmt.Print(result.BirdANOVA.Summary())
//
// The run writes figure1.jpg, figure2.jpg and figure3.jpg plus CSV
// snapshots of both datasets into the output directory, overwriting
// silently on repeated runs.
package datasim

import (
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/ttrotto/DataSimulator/dataset"
	"github.com/ttrotto/DataSimulator/fit"
	"github.com/ttrotto/DataSimulator/internal/digest"
	"github.com/ttrotto/DataSimulator/render"
	"github.com/ttrotto/DataSimulator/sample"
	"github.com/ttrotto/DataSimulator/snapshot"
)

// DefaultSeed seeds a run when no override is given.
const DefaultSeed uint64 = 10

// DefaultRows is the per-dataset row count.
const DefaultRows = 20

// Fixed artifact names written into the output directory.
const (
	Figure1Name = "figure1.jpg"
	Figure2Name = "figure2.jpg"
	Figure3Name = "figure3.jpg"

	ElevationSnapshotName = "elevation.csv"
	BirdsSnapshotName     = "birds.csv"
)

// Result holds everything a run produced: the synthesized tables, the
// fitted models, and the paths and fingerprints of the exported artifacts.
type Result struct {
	// Elevation and Birds are the synthesized tables.
	Elevation *dataset.ElevationHarvest
	Birds     *dataset.BirdDensity

	// HarvestTrend fits harvesting_random ~ elevation.
	HarvestTrend *fit.LinearModel
	// HarvestClimate fits harvesting_random ~ elevation + climate.
	HarvestClimate *fit.LinearModel
	// BirdANOVA fits birds ~ tree with Tukey pairwise comparisons.
	BirdANOVA *fit.ANOVAModel

	// FigurePaths and SnapshotPaths list the exported artifacts.
	FigurePaths   []string
	SnapshotPaths []string
	// Digests maps each artifact path to its content fingerprint.
	Digests map[string]string
}

// Run executes the full pipeline: sample, synthesize, fit, render, export.
//
// Parameters:
//   - opts: Functional options; defaults are seed 10, 20 rows, the current
//     directory, uncompressed snapshots, and no logging
//
// Returns:
//   - *Result: Synthesized data, fitted models and artifact fingerprints
//   - error: First failure; the run stops there and earlier artifacts remain
func Run(opts ...Option) (*Result, error) {
	cfg := defaultPipelineConfig()
	if err := applyOptions(cfg, opts...); err != nil {
		return nil, err
	}
	log := cfg.logger

	stream := sample.NewStream(cfg.seed)
	log.Info("run started", zap.Uint64("seed", cfg.seed), zap.Int("rows", cfg.rows))

	elevation, err := dataset.NewElevationHarvest(stream, cfg.rows)
	if err != nil {
		return nil, fmt.Errorf("synthesize elevation dataset: %w", err)
	}
	birds, err := dataset.NewBirdDensity(stream, cfg.rows)
	if err != nil {
		return nil, fmt.Errorf("synthesize bird dataset: %w", err)
	}
	log.Info("datasets synthesized",
		zap.Int("elevation_rows", elevation.Rows()),
		zap.Int("bird_rows", birds.Rows()))

	result := &Result{
		Elevation: elevation,
		Birds:     birds,
		Digests:   make(map[string]string),
	}

	if err := fitModels(result); err != nil {
		return nil, err
	}
	log.Info("models fitted",
		zap.Float64("trend_r2", result.HarvestTrend.RSquared),
		zap.Float64("anova_f", result.BirdANOVA.FStat))

	if err := exportFigures(result, stream, cfg.outputDir); err != nil {
		return nil, err
	}
	if err := exportSnapshots(result, cfg.outputDir, cfg.codec); err != nil {
		return nil, err
	}

	for _, path := range append(append([]string{}, result.FigurePaths...), result.SnapshotPaths...) {
		d, err := digest.File(path)
		if err != nil {
			return nil, err
		}
		result.Digests[path] = d
	}
	log.Info("run finished",
		zap.Strings("figures", result.FigurePaths),
		zap.Strings("snapshots", result.SnapshotPaths))

	return result, nil
}

// fitModels fits the two regressions and the ANOVA over the synthesized
// tables.
func fitModels(result *Result) error {
	elevation := result.Elevation

	response := fit.Continuous{Name: "harvesting_random", Values: elevation.HarvestingRandom}
	elevationPredictor := fit.Continuous{Name: "elevation", Values: elevation.Elevation}

	trend, err := fit.FitOLS(response, elevationPredictor)
	if err != nil {
		return fmt.Errorf("fit harvesting trend: %w", err)
	}
	result.HarvestTrend = trend

	withClimate, err := fit.FitOLS(response, elevationPredictor, climatePredictor(elevation))
	if err != nil {
		return fmt.Errorf("fit harvesting by climate: %w", err)
	}
	result.HarvestClimate = withClimate

	birdResponse, treeGroups := birdColumns(result.Birds)
	anova, err := fit.FitANOVA(birdResponse, treeGroups)
	if err != nil {
		return fmt.Errorf("fit bird ANOVA: %w", err)
	}
	result.BirdANOVA = anova

	return nil
}

// climatePredictor adapts the climate column to a categorical predictor
// with Wet as the reference level.
func climatePredictor(d *dataset.ElevationHarvest) fit.Categorical {
	climates := dataset.Climates()
	levels := make([]string, len(climates))
	position := make(map[dataset.Climate]int, len(climates))
	for i, c := range climates {
		levels[i] = c.String()
		position[c] = i
	}

	index := make([]int, d.Rows())
	for i, c := range d.Climate {
		index[i] = position[c]
	}

	return fit.Categorical{Name: "climate", Levels: levels, Index: index}
}

// birdColumns adapts the long-form bird table to a response column and a
// species grouping with Cedar as the reference level.
func birdColumns(d *dataset.BirdDensity) (fit.Continuous, fit.Categorical) {
	species := dataset.AllSpecies()
	levels := make([]string, len(species))
	position := make(map[dataset.Species]int, len(species))
	for i, s := range species {
		levels[i] = s.String()
		position[s] = i
	}

	obs := d.Longform()
	values := make([]float64, len(obs))
	index := make([]int, len(obs))
	for i, o := range obs {
		values[i] = float64(o.Birds)
		index[i] = position[o.Tree]
	}

	return fit.Continuous{Name: "birds", Values: values},
		fit.Categorical{Name: "tree", Levels: levels, Index: index}
}

// exportFigures renders and writes the three fixed figures.
func exportFigures(result *Result, stream *sample.Stream, outputDir string) error {
	elevation := result.Elevation

	// Panel 1 of figure 1: the deterministic relationship as a line,
	// points ordered by elevation so the line is monotone.
	sortedX, sortedY := sortedByX(elevation.Elevation, elevation.Harvesting)
	linePanel, err := render.Render(render.Spec{
		Kind:   render.KindLine,
		Title:  "Deterministic harvesting",
		XLabel: "Elevation (m)",
		YLabel: "Harvesting",
		Series: []render.Series{{X: sortedX, Y: sortedY}},
	})
	if err != nil {
		return fmt.Errorf("render figure 1 line panel: %w", err)
	}

	scatterPanel, err := render.Render(render.Spec{
		Kind:   render.KindScatterTrend,
		Title:  "Harvesting with noise",
		XLabel: "Elevation (m)",
		YLabel: "Harvesting",
		Series: []render.Series{{X: elevation.Elevation, Y: elevation.HarvestingRandom}},
	})
	if err != nil {
		return fmt.Errorf("render figure 1 scatter panel: %w", err)
	}

	figure2, err := render.Render(render.Spec{
		Kind:   render.KindScatterTrend,
		Title:  "Harvesting by climate",
		XLabel: "Elevation (m)",
		YLabel: "Harvesting",
		Series: climateSeries(elevation),
	})
	if err != nil {
		return fmt.Errorf("render figure 2: %w", err)
	}

	figure3, err := render.Render(render.Spec{
		Kind:   render.KindBoxJitter,
		Title:  "Bird density by tree species",
		XLabel: "Tree species",
		YLabel: "Birds",
		Series: birdSeries(result.Birds),
		Jitter: stream,
	})
	if err != nil {
		return fmt.Errorf("render figure 3: %w", err)
	}

	figures := []struct {
		figure *render.Figure
		name   string
	}{
		{render.Compose(linePanel, scatterPanel), Figure1Name},
		{figure2, Figure2Name},
		{figure3, Figure3Name},
	}
	for _, f := range figures {
		path := filepath.Join(outputDir, f.name)
		if err := f.figure.Export(path); err != nil {
			return err
		}
		result.FigurePaths = append(result.FigurePaths, path)
	}

	return nil
}

// climateSeries splits the elevation table into one noisy-harvesting
// series per climate category.
func climateSeries(d *dataset.ElevationHarvest) []render.Series {
	series := make([]render.Series, 0, 3)
	for _, climate := range dataset.Climates() {
		s := render.Series{Label: climate.String()}
		for i, c := range d.Climate {
			if c == climate {
				s.X = append(s.X, d.Elevation[i])
				s.Y = append(s.Y, d.HarvestingRandom[i])
			}
		}
		series = append(series, s)
	}

	return series
}

// birdSeries builds one count series per tree species.
func birdSeries(d *dataset.BirdDensity) []render.Series {
	columns := [][]int{d.Cedar, d.Fir, d.Hemlock}
	species := dataset.AllSpecies()

	series := make([]render.Series, len(species))
	for i, sp := range species {
		values := make([]float64, len(columns[i]))
		for j, v := range columns[i] {
			values[j] = float64(v)
		}
		series[i] = render.Series{Label: sp.String(), Y: values}
	}

	return series
}

// exportSnapshots writes the CSV snapshots of both tables.
func exportSnapshots(result *Result, outputDir string, codec snapshot.CodecType) error {
	type table struct {
		name    string
		columns []string
		rows    [][]string
	}

	elevationCols, elevationRows := result.Elevation.Records()
	birdCols, birdRows := result.Birds.Records()
	tables := []table{
		{ElevationSnapshotName, elevationCols, elevationRows},
		{BirdsSnapshotName, birdCols, birdRows},
	}

	for _, t := range tables {
		path, err := snapshot.Save(filepath.Join(outputDir, t.name), codec, t.columns, t.rows)
		if err != nil {
			return err
		}
		result.SnapshotPaths = append(result.SnapshotPaths, path)
	}

	return nil
}

// sortedByX returns copies of x and y ordered by ascending x.
func sortedByX(x, y []float64) ([]float64, []float64) {
	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return x[order[a]] < x[order[b]] })

	sx := make([]float64, len(x))
	sy := make([]float64, len(y))
	for i, idx := range order {
		sx[i] = x[idx]
		sy[i] = y[idx]
	}

	return sx, sy
}
