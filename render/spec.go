// Package render builds figures from synthesized datasets and exports
// them as raster images.
//
// A figure is described up front by a typed Spec with a closed set of
// plot kinds, so an unsupported kind is rejected when the figure is built
// rather than surfacing at export time. Rendering has no side effects;
// only Export touches the filesystem.
package render

import (
	"errors"

	"github.com/ttrotto/DataSimulator/sample"
)

// ErrInvalidSpec reports a plot spec that cannot be rendered: an unknown
// kind, no series, or a series with mismatched column lengths.
var ErrInvalidSpec = errors.New("invalid plot spec")

// PlotKind is the closed set of supported plot kinds.
type PlotKind uint8

const (
	KindLine         PlotKind = 0x1 // KindLine connects points in series order.
	KindScatterTrend PlotKind = 0x2 // KindScatterTrend scatters points with a per-series OLS trend line.
	KindBoxJitter    PlotKind = 0x3 // KindBoxJitter draws one box per series with jittered points.
)

func (k PlotKind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindScatterTrend:
		return "ScatterTrend"
	case KindBoxJitter:
		return "BoxJitter"
	default:
		return "Unknown"
	}
}

// Series is one named data series. For KindBoxJitter only Y is used; the
// series position on the x axis is its index in the spec.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// Spec describes one figure panel.
type Spec struct {
	// Kind selects the plot kind.
	Kind PlotKind
	// Title, XLabel and YLabel annotate the panel.
	Title  string
	XLabel string
	YLabel string
	// Series holds the data series, one color per series.
	Series []Series

	// Jitter supplies the horizontal point offsets for KindBoxJitter.
	// A nil stream draws the points without jitter. The pipeline passes
	// its run stream here so jittered figures stay seed-reproducible.
	Jitter *sample.Stream
	// JitterWidth is the total horizontal jitter span in x-axis units.
	// Zero selects the default width.
	JitterWidth float64
}
