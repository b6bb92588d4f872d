package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ttrotto/DataSimulator/fit"
)

const defaultJitterWidth = 0.35

// Render builds one figure panel from the given spec.
//
// Rendering is side-effect free; the returned figure only touches the
// filesystem when exported.
//
// Parameters:
//   - spec: Panel description with a validated plot kind
//
// Returns:
//   - *Figure: Single-panel figure ready for composition or export
//   - error: ErrInvalidSpec for unknown kinds or malformed series
func Render(spec Spec) (*Figure, error) {
	if len(spec.Series) == 0 {
		return nil, fmt.Errorf("%w: no series", ErrInvalidSpec)
	}
	for i, s := range spec.Series {
		if spec.Kind != KindBoxJitter && len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("%w: series %d (%q) has %d x values and %d y values",
				ErrInvalidSpec, i, s.Label, len(s.X), len(s.Y))
		}
		if len(s.Y) == 0 {
			return nil, fmt.Errorf("%w: series %d (%q) is empty", ErrInvalidSpec, i, s.Label)
		}
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel

	var err error
	switch spec.Kind {
	case KindLine:
		err = renderLine(p, spec)
	case KindScatterTrend:
		err = renderScatterTrend(p, spec)
	case KindBoxJitter:
		err = renderBoxJitter(p, spec)
	default:
		return nil, fmt.Errorf("%w: unknown plot kind %d", ErrInvalidSpec, spec.Kind)
	}
	if err != nil {
		return nil, err
	}

	return &Figure{panels: []*plot.Plot{p}}, nil
}

// renderLine connects each series' points in order.
func renderLine(p *plot.Plot, spec Spec) error {
	for i, s := range spec.Series {
		line, err := plotter.NewLine(seriesXYs(s))
		if err != nil {
			return fmt.Errorf("line series %q: %w", s.Label, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		if s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}

	return nil
}

// renderScatterTrend scatters each series and overlays its exact OLS
// trend line in the same color.
func renderScatterTrend(p *plot.Plot, spec Spec) error {
	for i, s := range spec.Series {
		scatter, err := plotter.NewScatter(seriesXYs(s))
		if err != nil {
			return fmt.Errorf("scatter series %q: %w", s.Label, err)
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(2.5)
		scatter.GlyphStyle.Color = plotutil.Color(i)
		p.Add(scatter)

		trend, err := trendLine(s)
		if err != nil {
			return fmt.Errorf("trend for series %q: %w", s.Label, err)
		}
		trend.LineStyle.Width = vg.Points(1.5)
		trend.LineStyle.Color = plotutil.Color(i)
		p.Add(trend)

		if s.Label != "" {
			p.Legend.Add(s.Label, scatter, trend)
		}
	}
	p.Legend.Top = true

	return nil
}

// renderBoxJitter draws one box per series at integer x positions with
// the raw points scattered on top.
func renderBoxJitter(p *plot.Plot, spec Spec) error {
	width := spec.JitterWidth
	if width == 0 {
		width = defaultJitterWidth
	}

	names := make([]string, len(spec.Series))
	for i, s := range spec.Series {
		box, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(s.Y))
		if err != nil {
			return fmt.Errorf("box for series %q: %w", s.Label, err)
		}
		p.Add(box)

		points := make(plotter.XYs, len(s.Y))
		for j, y := range s.Y {
			x := float64(i)
			if spec.Jitter != nil {
				x += (spec.Jitter.Float64() - 0.5) * width
			}
			points[j] = plotter.XY{X: x, Y: y}
		}
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return fmt.Errorf("jitter for series %q: %w", s.Label, err)
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(2)
		scatter.GlyphStyle.Color = plotutil.Color(i)
		p.Add(scatter)

		names[i] = s.Label
	}
	p.NominalX(names...)

	return nil
}

// trendLine fits y ~ x by ordinary least squares and returns the fitted
// line across the observed x span.
func trendLine(s Series) (*plotter.Line, error) {
	model, err := fit.FitOLS(
		fit.Continuous{Name: "y", Values: s.Y},
		fit.Continuous{Name: "x", Values: s.X},
	)
	if err != nil {
		return nil, err
	}
	intercept := model.Coefficients[0].Estimate
	slope := model.Coefficients[1].Estimate

	minX, maxX := s.X[0], s.X[0]
	for _, x := range s.X[1:] {
		minX = min(minX, x)
		maxX = max(maxX, x)
	}

	return plotter.NewLine(plotter.XYs{
		{X: minX, Y: intercept + slope*minX},
		{X: maxX, Y: intercept + slope*maxX},
	})
}

// seriesXYs converts a series to plotter points.
func seriesXYs(s Series) plotter.XYs {
	points := make(plotter.XYs, len(s.X))
	for i := range s.X {
		points[i] = plotter.XY{X: s.X[i], Y: s.Y[i]}
	}

	return points
}
