// Package session holds the view state of the plot viewer: the loaded
// runs, the selected run and one Plot per metric.
//
// Session is not safe for concurrent use; it is driven from the UI event
// loop.
package session

import (
	"fmt"

	"github.com/Fjolfrin/tbtui/internal/config"
	tberrors "github.com/Fjolfrin/tbtui/internal/errors"
	"github.com/Fjolfrin/tbtui/internal/history"
	"github.com/Fjolfrin/tbtui/internal/logging"
)

// Context is the data every view needs. It is built once before the event
// loop starts and passed down explicitly.
type Context struct {
	Runs   []*history.Table
	Config *config.Config
}

// Session is the plot view state.
type Session struct {
	runs     []*history.Table
	cfg      *config.Config
	bus      *Bus
	selected int
	theme    config.ThemeName

	plots  map[string]*Plot
	unsubs map[string]func()
}

// Option configures a Session.
type Option func(*Session)

// WithBus sets the event bus plots subscribe to. The default is Events().
func WithBus(b *Bus) Option {
	return func(s *Session) {
		s.bus = b
	}
}

// New creates a session with the first run selected and its plots mounted.
func New(ctx Context, opts ...Option) (*Session, error) {
	cfg := ctx.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if len(ctx.Runs) == 0 {
		return nil, tberrors.NoHistoryFiles(cfg.Path, cfg.Suffix)
	}

	s := &Session{
		runs:   ctx.Runs,
		cfg:    cfg,
		theme:  cfg.Theme,
		plots:  make(map[string]*Plot),
		unsubs: make(map[string]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bus == nil {
		s.bus = Events()
	}
	if !s.theme.Valid() {
		s.theme = config.DefaultTheme
	}

	s.mountVisible()
	logging.Info("session started", "runs", len(s.runs), "selected", s.SelectedTable().Name)
	return s, nil
}

// Runs returns the loaded tables.
func (s *Session) Runs() []*history.Table {
	return s.runs
}

// Selected returns the selected run index.
func (s *Session) Selected() int {
	return s.selected
}

// SelectedTable returns the selected run.
func (s *Session) SelectedTable() *history.Table {
	return s.runs[s.selected]
}

// VisibleMetrics returns the selected run's metrics in column order.
func (s *Session) VisibleMetrics() []string {
	return s.SelectedTable().Metrics
}

// Plot returns the plot for metric if one has been created.
func (s *Session) Plot(metric string) (*Plot, bool) {
	p, ok := s.plots[metric]
	return p, ok
}

// VisiblePlots returns the plots of the selected run in column order.
// Plots of metrics the run lacks are kept but not returned.
func (s *Session) VisiblePlots() []*Plot {
	metrics := s.VisibleMetrics()
	out := make([]*Plot, 0, len(metrics))
	for _, m := range metrics {
		if p, ok := s.plots[m]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Select switches the selected run and re-plots every visible metric.
func (s *Session) Select(i int) error {
	if i < 0 || i >= len(s.runs) {
		return tberrors.New(tberrors.ErrNotFound, fmt.Sprintf("run index %d out of range", i)).
			WithDetails("runs", fmt.Sprint(len(s.runs)))
	}
	s.selected = i
	s.mountVisible()

	t := s.SelectedTable()
	hidden := 0
	for m := range s.plots {
		if !t.HasMetric(m) {
			hidden++
		}
	}
	logging.Info("run selected", "index", i, "run", t.Name, "metrics", len(t.Metrics), "hidden", hidden)
	return nil
}

// mountVisible mounts plots for metrics seen for the first time and
// re-plots the rest.
func (s *Session) mountVisible() {
	t := s.SelectedTable()
	for _, m := range t.Metrics {
		p, ok := s.plots[m]
		if !ok {
			p = NewPlot(m, s.cfg.MaxTicks)
			s.plots[m] = p
			s.unsubs[m] = s.bus.Subscribe(p.Notify)
			p.Mount(t)
			continue
		}
		p.Replot(t)
	}
}

// ToggleMin flips the min annotation on every visible plot.
func (s *Session) ToggleMin() {
	for _, p := range s.VisiblePlots() {
		p.ToggleMin()
	}
}

// ToggleMax flips the max annotation on every visible plot.
func (s *Session) ToggleMax() {
	for _, p := range s.VisiblePlots() {
		p.ToggleMax()
	}
}

// Theme returns the current theme.
func (s *Session) Theme() config.ThemeName {
	return s.theme
}

// SetTheme switches the theme and notifies every mounted plot.
func (s *Session) SetTheme(t config.ThemeName) {
	if t == s.theme {
		return
	}
	s.theme = t
	s.bus.Publish(ThemeChanged{Theme: t})
}

// CycleTheme advances to the next theme.
func (s *Session) CycleTheme() config.ThemeName {
	s.SetTheme(s.theme.Next())
	return s.theme
}

// Close unsubscribes every plot from the bus.
func (s *Session) Close() {
	for m, unsub := range s.unsubs {
		unsub()
		delete(s.unsubs, m)
	}
}
