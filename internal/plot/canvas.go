package plot

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	drawille "github.com/chriskim06/drawille-go"
)

// Glyphs used when compositing the figure.
const (
	glyphEmpty    = ' '
	glyphGridH    = '┈'
	glyphGridV    = '┊'
	glyphGridX    = '┼'
	glyphGuide    = '│'
	glyphPoint    = '•'
	glyphFlat     = '─'
	glyphAxisY    = '│'
	glyphAxisX    = '─'
	glyphOrigin   = '└'
	glyphTickMark = '┬'
	blankBraille  = '⠀'
)

type cell struct {
	r    rune
	role Role
	set  bool
}

// grid is the plot area, row 0 at the top.
type grid struct {
	w, h  int
	cells [][]cell
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([][]cell, h)}
	for i := range g.cells {
		g.cells[i] = make([]cell, w)
	}
	return g
}

func (g *grid) put(row, col int, r rune, role Role) {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		return
	}
	g.cells[row][col] = cell{r: r, role: role, set: true}
}

func (g *grid) at(row, col int) cell {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		return cell{}
	}
	return g.cells[row][col]
}

// bounds is the data window mapped onto the grid.
type bounds struct {
	xmin, xmax float64
	ymin, ymax float64
}

func (b bounds) col(x float64, w int) int {
	if w <= 1 || b.xmax == b.xmin {
		return 0
	}
	return int(math.Round((x - b.xmin) / (b.xmax - b.xmin) * float64(w-1)))
}

func (b bounds) row(y float64, h int) int {
	if h <= 1 || b.ymax == b.ymin {
		return h / 2
	}
	return int(math.Round((b.ymax - y) / (b.ymax - b.ymin) * float64(h-1)))
}

// dataBounds computes the window covering every series, marker and guide.
// A flat or empty y range is widened so it maps to the middle row.
func (f *Figure) dataBounds() bounds {
	b := bounds{
		xmin: math.Inf(1), xmax: math.Inf(-1),
		ymin: math.Inf(1), ymax: math.Inf(-1),
	}
	addX := func(x float64) {
		if math.IsNaN(x) {
			return
		}
		b.xmin = math.Min(b.xmin, x)
		b.xmax = math.Max(b.xmax, x)
	}
	addY := func(y float64) {
		if !finite(y) {
			return
		}
		b.ymin = math.Min(b.ymin, y)
		b.ymax = math.Max(b.ymax, y)
	}
	for _, s := range f.Series {
		for i := range s.X {
			if i < len(s.Y) && finite(s.Y[i]) {
				addX(s.X[i])
				addY(s.Y[i])
			}
		}
	}
	for _, m := range f.Markers {
		if finite(m.Y) {
			addX(m.X)
			addY(m.Y)
		}
	}
	for _, v := range f.VLines {
		addX(v.X)
	}
	if math.IsInf(b.xmin, 1) {
		b.xmin, b.xmax = 0, 1
	}
	if math.IsInf(b.ymin, 1) {
		b.ymin, b.ymax = 0, 1
	}
	if b.ymin == b.ymax {
		pad := math.Abs(b.ymin) * 0.1
		if pad == 0 {
			pad = 1
		}
		b.ymin -= pad
		b.ymax += pad
	}
	return b
}

// drawSeries rasterizes s onto g. A series spanning the whole window with
// no gaps goes through the braille canvas; everything else is drawn as
// individual points.
func drawSeries(g *grid, s Series, b bounds) {
	n := min(len(s.X), len(s.Y))
	if n == 0 {
		return
	}
	if braille, ok := brailleRows(s, n, b, g.w, g.h); ok {
		for row, line := range braille {
			col := 0
			for _, r := range line {
				if col >= g.w {
					break
				}
				if r != glyphEmpty && r != blankBraille {
					g.put(row, col, r, s.Role)
				}
				col++
			}
		}
		return
	}

	lo, hi := seriesRange(s.Y[:n])
	flat := !math.IsNaN(lo) && lo == hi
	prev := -1
	for i := 0; i < n; i++ {
		if !finite(s.Y[i]) {
			prev = -1
			continue
		}
		col := b.col(s.X[i], g.w)
		row := b.row(s.Y[i], g.h)
		if flat && prev >= 0 {
			for c := prev + 1; c < col; c++ {
				g.put(row, c, glyphFlat, s.Role)
			}
		}
		g.put(row, col, glyphPoint, s.Role)
		prev = col
	}
}

// brailleRows renders s with the drawille canvas. The canvas scales to its
// own data, so it is only used when s fills the window exactly; the values
// are shifted to start at zero so either scaling origin lines up.
func brailleRows(s Series, n int, b bounds, w, h int) ([]string, bool) {
	if n < 2 || w < 2 || h < 1 {
		return nil, false
	}
	lo, hi := seriesRange(s.Y[:n])
	if math.IsNaN(lo) || lo == hi || lo != b.ymin || hi != b.ymax {
		return nil, false
	}
	if s.X[0] != b.xmin || s.X[n-1] != b.xmax {
		return nil, false
	}
	shifted := make([]float64, n)
	for i, v := range s.Y[:n] {
		if !finite(v) {
			return nil, false
		}
		shifted[i] = v - lo
	}

	c := drawille.NewCanvas(w, h)
	c.NumDataPoints = n
	c.ShowAxis = false
	c.LineColors = []drawille.Color{drawille.Red}
	c.Fill([][]float64{shifted})

	out := strings.Split(ansi.Strip(c.String()), "\n")
	if len(out) > h {
		out = out[:h]
	}
	return out, true
}

// seriesRange returns the min and max finite values, or NaN when none exist.
func seriesRange(y []float64) (float64, float64) {
	lo, hi := math.NaN(), math.NaN()
	for _, v := range y {
		if !finite(v) {
			continue
		}
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
	}
	return lo, hi
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// paint renders one row of cells, grouping runs that share a role.
func paint(cells []cell, p Palette) string {
	var sb strings.Builder
	var run []rune
	runRole := Role(-1)
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runRole < 0 {
			sb.WriteString(string(run))
		} else {
			sb.WriteString(lipgloss.NewStyle().Foreground(p.color(runRole)).Render(string(run)))
		}
		run = run[:0]
	}
	for _, c := range cells {
		role := Role(-1)
		r := glyphEmpty
		if c.set {
			role, r = c.role, c.r
		}
		if role != runRole {
			flush()
			runRole = role
		}
		run = append(run, r)
	}
	flush()
	return sb.String()
}
