package render

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Panel dimensions of an exported figure.
const (
	panelWidth  = 5 * vg.Inch
	panelHeight = 4 * vg.Inch
)

// Figure is a rendered figure of one or more side-by-side panels. It is
// bound to its dataset view at render time and is consumed only by Export.
type Figure struct {
	panels []*plot.Plot
}

// Compose merges the panels of the given figures into one multi-panel
// figure, left to right.
func Compose(figures ...*Figure) *Figure {
	var panels []*plot.Plot
	for _, f := range figures {
		panels = append(panels, f.panels...)
	}

	return &Figure{panels: panels}
}

// Panels returns the number of panels in the figure.
func (f *Figure) Panels() int {
	return len(f.panels)
}

// Export rasterizes the figure and writes it as a JPEG image to path.
//
// Repeated exports to the same path silently overwrite. A failure wraps
// the underlying cause and names the path.
//
// Parameters:
//   - path: Destination file path
//
// Returns:
//   - error: Creation or write error naming the path
func (f *Figure) Export(path string) error {
	if len(f.panels) == 0 {
		return fmt.Errorf("export figure to %s: no panels", path)
	}

	canvas := vgimg.New(panelWidth*vg.Length(len(f.panels)), panelHeight)
	dc := draw.New(canvas)

	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(f.panels),
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{f.panels}, tiles, dc)
	for i, p := range f.panels {
		p.Draw(canvases[0][i])
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export figure to %s: %w", path, err)
	}
	defer out.Close()

	jpeg := vgimg.JpegCanvas{Canvas: canvas}
	if _, err := jpeg.WriteTo(out); err != nil {
		return fmt.Errorf("export figure to %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("export figure to %s: %w", path, err)
	}

	return nil
}
