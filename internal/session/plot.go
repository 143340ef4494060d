package session

import (
	"fmt"

	"github.com/Fjolfrin/tbtui/internal/history"
	"github.com/Fjolfrin/tbtui/internal/logging"
	"github.com/Fjolfrin/tbtui/internal/plot"
)

// Renderable is a view that draws one metric of the selected table.
type Renderable interface {
	// Mount attaches the view to t and renders it for the first time.
	Mount(t *history.Table)
	// Replot swaps in t's data for the same metric and re-renders.
	Replot(t *history.Table)
	// Notify delivers a bus event.
	Notify(e Event)
}

// State is a plot's lifecycle state.
type State int

const (
	StateInitial State = iota
	StateRendered
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateRendered:
		return "rendered"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Glyphs used for extremum annotations.
const (
	MinGlyph = '▼'
	MaxGlyph = '▲'
)

// Plot is the per-metric plot state.
type Plot struct {
	Metric  string
	X       []float64
	Y       []float64
	ShowMin bool
	ShowMax bool

	maxTicks int
	state    State
	renders  int
	fig      plot.Figure
}

var _ Renderable = (*Plot)(nil)

// NewPlot creates an unmounted plot for metric.
func NewPlot(metric string, maxTicks int) *Plot {
	return &Plot{Metric: metric, maxTicks: maxTicks}
}

// ID identifies the plot widget.
func (p *Plot) ID() string {
	return p.Metric + "_plot"
}

// State returns the lifecycle state.
func (p *Plot) State() State {
	return p.state
}

// Renders counts completed renders; each one is a refresh request.
func (p *Plot) Renders() int {
	return p.renders
}

// Figure returns the figure from the last render.
func (p *Plot) Figure() *plot.Figure {
	return &p.fig
}

// Mount implements Renderable.
func (p *Plot) Mount(t *history.Table) {
	p.load(t)
	p.render()
	p.state = StateRendered
}

// Replot implements Renderable.
func (p *Plot) Replot(t *history.Table) {
	p.load(t)
	p.render()
}

// Notify implements Renderable.
func (p *Plot) Notify(e Event) {
	if _, ok := e.(ThemeChanged); ok && p.state == StateRendered {
		p.render()
	}
}

// ToggleMin flips the min annotation and re-renders.
func (p *Plot) ToggleMin() {
	p.ShowMin = !p.ShowMin
	p.render()
}

// ToggleMax flips the max annotation and re-renders.
func (p *Plot) ToggleMax() {
	p.ShowMax = !p.ShowMax
	p.render()
}

// View rasterizes the last render.
func (p *Plot) View(width, height int, palette plot.Palette) string {
	return p.fig.Render(width, height, palette)
}

func (p *Plot) load(t *history.Table) {
	p.Y, _ = t.Column(p.Metric)
	p.X = make([]float64, len(p.Y))
	for i := range p.X {
		p.X[i] = float64(i)
	}
}

func (p *Plot) render() {
	f := &p.fig
	f.ClearData()
	f.Plot(p.X, p.Y, plot.RoleLine)
	f.SetTitle(p.ID())

	if p.ShowMin {
		if i, ok := plot.ArgMin(p.Y); ok {
			p.annotate(i, "Min", MinGlyph)
		}
	}
	if p.ShowMax {
		if i, ok := plot.ArgMax(p.Y); ok {
			p.annotate(i, "Max", MaxGlyph)
		}
	}

	f.SetXTicks(plot.Ticks(p.X, p.maxTicks))
	f.Grid(true, true)
	p.renders++

	logging.Debug("plot rendered",
		"plot", p.ID(),
		"points", len(p.Y),
		"show_min", p.ShowMin,
		"show_max", p.ShowMax,
		"renders", p.renders)
}

func (p *Plot) annotate(i int, kind string, glyph rune) {
	label := fmt.Sprintf("%s: %.3f @ epoch: %d", kind, p.Y[i], int(p.X[i]))
	p.fig.Scatter(p.X[i], p.Y[i], label, glyph, plot.RoleAnnotation)
	p.fig.VerticalLine(p.X[i], plot.RoleAnnotation)
}
