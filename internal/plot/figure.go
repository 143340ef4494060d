// Package plot records what a metric plot draws and rasterizes it to
// terminal text.
//
// A Figure is a retained drawing surface: callers clear it, add a line
// series, markers, guides and ticks, then call Render with a size and a
// Palette. Keeping the drawing commands separate from the rasterization
// lets the plot state be inspected directly.
package plot

// Role says what a drawn element means; the Palette maps roles to colors.
type Role int

const (
	RoleLine Role = iota
	RoleAnnotation
	RoleGrid
	RoleAxis
)

// Series is a connected line through (X[i], Y[i]).
type Series struct {
	X    []float64
	Y    []float64
	Role Role
}

// Marker is a single labelled point.
type Marker struct {
	X, Y  float64
	Label string
	Glyph rune
	Role  Role
}

// VLine is a vertical guide line at X.
type VLine struct {
	X    float64
	Role Role
}

// Figure holds everything drawn on one plot.
type Figure struct {
	Title   string
	Series  []Series
	Markers []Marker
	VLines  []VLine
	XTicks  []float64
	GridH   bool
	GridV   bool
}

// ClearData removes every drawn element, leaving an empty figure.
func (f *Figure) ClearData() {
	*f = Figure{}
}

// SetTitle sets the figure title.
func (f *Figure) SetTitle(title string) {
	f.Title = title
}

// Plot adds a connected line series.
func (f *Figure) Plot(x, y []float64, role Role) {
	f.Series = append(f.Series, Series{
		X:    append([]float64(nil), x...),
		Y:    append([]float64(nil), y...),
		Role: role,
	})
}

// Scatter adds a labelled marker.
func (f *Figure) Scatter(x, y float64, label string, glyph rune, role Role) {
	f.Markers = append(f.Markers, Marker{X: x, Y: y, Label: label, Glyph: glyph, Role: role})
}

// VerticalLine adds a vertical guide at x.
func (f *Figure) VerticalLine(x float64, role Role) {
	f.VLines = append(f.VLines, VLine{X: x, Role: role})
}

// SetXTicks replaces the x-axis tick positions.
func (f *Figure) SetXTicks(ticks []float64) {
	f.XTicks = append([]float64(nil), ticks...)
}

// Grid toggles horizontal and vertical grid lines.
func (f *Figure) Grid(horizontal, vertical bool) {
	f.GridH = horizontal
	f.GridV = vertical
}
