package plot

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const (
	minRenderWidth  = 12
	minRenderHeight = 5
	minPlotRows     = 2
	minPlotCols     = 4
)

// Render rasterizes the figure into at most width x height cells. Sizes too
// small to hold an axis and a line return "".
func (f *Figure) Render(width, height int, p Palette) string {
	if width < minRenderWidth || height < minRenderHeight {
		return ""
	}
	if p.isZero() {
		p = DefaultPalette()
	}

	legend := f.legend()
	// title, plot rows, x axis, x labels, legend
	rows := height - 3 - len(legend)
	if rows < minPlotRows {
		legend = nil
		rows = height - 3
	}

	b := f.dataBounds()
	yLabels := yAxisLabels(b, rows)
	labelWidth := 0
	for _, l := range yLabels {
		labelWidth = max(labelWidth, utf8.RuneCountInString(l))
	}
	cols := width - labelWidth - 1
	if rows < minPlotRows || cols < minPlotCols {
		return ""
	}

	g := newGrid(cols, rows)
	tickCols := make([]int, 0, len(f.XTicks))
	for _, t := range f.XTicks {
		tickCols = append(tickCols, b.col(t, cols))
	}
	f.drawGrid(g, tickCols)
	for _, v := range f.VLines {
		col := b.col(v.X, cols)
		for row := 0; row < rows; row++ {
			g.put(row, col, glyphGuide, v.Role)
		}
	}
	for _, s := range f.Series {
		drawSeries(g, s, b)
	}
	for _, m := range f.Markers {
		g.put(b.row(m.Y, rows), b.col(m.X, cols), markerGlyph(m), m.Role)
	}

	axis := lipgloss.NewStyle().Foreground(p.Axis)
	lines := make([]string, 0, height)
	lines = append(lines, f.titleLine(width, p))
	for row := 0; row < rows; row++ {
		label := yLabels[row]
		pad := strings.Repeat(" ", labelWidth-utf8.RuneCountInString(label))
		lines = append(lines, axis.Render(pad+label+string(glyphAxisY))+paint(g.cells[row], p))
	}
	lines = append(lines, axis.Render(strings.Repeat(" ", labelWidth)+xAxisLine(cols, tickCols)))
	lines = append(lines, axis.Render(strings.Repeat(" ", labelWidth+1)+xTickLabels(f.XTicks, tickCols, cols)))
	ann := lipgloss.NewStyle().Foreground(p.Annotation)
	for _, l := range legend {
		lines = append(lines, ann.Render(truncate(l, width)))
	}
	return strings.Join(lines, "\n")
}

func (f *Figure) drawGrid(g *grid, tickCols []int) {
	if f.GridH {
		for _, row := range gridRows(g.h) {
			for col := 0; col < g.w; col++ {
				g.put(row, col, glyphGridH, RoleGrid)
			}
		}
	}
	if f.GridV {
		for _, col := range tickCols {
			for row := 0; row < g.h; row++ {
				r := glyphGridV
				if g.at(row, col).r == glyphGridH {
					r = glyphGridX
				}
				g.put(row, col, r, RoleGrid)
			}
		}
	}
}

// gridRows spaces horizontal grid lines roughly every four rows.
func gridRows(h int) []int {
	var rows []int
	for row := 0; row < h; row += 4 {
		rows = append(rows, row)
	}
	return rows
}

func (f *Figure) legend() []string {
	var out []string
	for _, m := range f.Markers {
		if m.Label != "" {
			out = append(out, string(markerGlyph(m))+" "+m.Label)
		}
	}
	return out
}

func markerGlyph(m Marker) rune {
	if m.Glyph == 0 {
		return glyphPoint
	}
	return m.Glyph
}

func (f *Figure) titleLine(width int, p Palette) string {
	title := truncate(f.Title, width)
	pad := (width - utf8.RuneCountInString(title)) / 2
	return strings.Repeat(" ", pad) + lipgloss.NewStyle().Bold(true).Foreground(p.Title).Render(title)
}

// yAxisLabels labels the top, middle and bottom rows.
func yAxisLabels(b bounds, rows int) []string {
	labels := make([]string, rows)
	if rows <= 0 {
		return labels
	}
	labels[0] = formatValue(b.ymax)
	if rows > 1 {
		labels[rows-1] = formatValue(b.ymin)
	}
	if rows >= 5 {
		labels[(rows-1)/2] = formatValue(b.ymin + (b.ymax-b.ymin)/2)
	}
	return labels
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func xAxisLine(cols int, tickCols []int) string {
	line := make([]rune, cols+1)
	line[0] = glyphOrigin
	for i := 1; i <= cols; i++ {
		line[i] = glyphAxisX
	}
	for _, c := range tickCols {
		if c >= 0 && c < cols {
			line[c+1] = glyphTickMark
		}
	}
	return string(line)
}

// xTickLabels places each tick label at its column, skipping labels that
// would overlap the previous one.
func xTickLabels(ticks []float64, tickCols []int, cols int) string {
	line := []rune(strings.Repeat(" ", cols))
	next := 0
	for i, t := range ticks {
		label := []rune(strconv.FormatFloat(t, 'f', -1, 64))
		start := tickCols[i]
		if start < next || start+len(label) > cols {
			continue
		}
		copy(line[start:], label)
		next = start + len(label) + 1
	}
	return strings.TrimRight(string(line), " ")
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
