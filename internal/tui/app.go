// Package tui provides the terminal user interface for tbtui.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Fjolfrin/tbtui/internal/logging"
	"github.com/Fjolfrin/tbtui/internal/session"
	"github.com/Fjolfrin/tbtui/internal/tui/components"
	"github.com/Fjolfrin/tbtui/internal/tui/styles"
)

// Layout constants.
const (
	headerHeight    = 1
	statusBarHeight = 1
	tabsHeight      = 1
	minRunListWidth = 18
	maxRunListWidth = 32
)

// Model is the Bubble Tea model for the tbtui viewer.
type Model struct {
	// Components
	header      *components.Header
	runList     *components.RunList
	tabs        *components.Tabs
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay
	help        help.Model
	keys        KeyMap

	sess *session.Session
	root string

	// Window dimensions
	width      int
	height     int
	plotWidth  int
	plotHeight int

	statusSeq int
	quitting  bool
}

// New creates the model and the plot session it drives. ctx must hold at
// least one run.
func New(ctx session.Context, opts ...session.Option) (*Model, error) {
	sess, err := session.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	root := "."
	if ctx.Config != nil {
		root = ctx.Config.Path
	}

	keys := DefaultKeyMap()
	m := &Model{
		header:      components.NewHeader(),
		runList:     components.NewRunList(),
		tabs:        components.NewTabs(),
		statusBar:   components.NewStatusBar(),
		helpOverlay: components.NewHelpOverlay(keys.HelpGroups()...),
		help:        help.New(),
		keys:        keys,
		sess:        sess,
		root:        root,
	}
	styles.Apply(styles.ForName(sess.Theme()))
	m.runList.SetRuns(sess.Runs())
	m.runList.SetSelected(sess.Selected())
	m.syncSelection()
	return m, nil
}

// Session returns the plot session.
func (m *Model) Session() *session.Session {
	return m.sess
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.helpOverlay.IsVisible() {
		if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+c" {
			return m.quit()
		}
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, m.helpOverlay.Update(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case StatusMsg:
		return m, m.setStatus(msg.Text, false)

	case ErrorMsg:
		return m, m.setStatus(msg.Error, true)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusBar.ClearMessage()
		}
		return m, nil

	case components.HelpClosedMsg:
		return m, nil

	case QuitMsg:
		return m.quit()
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.helpOverlay.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.ToggleMin):
		m.sess.ToggleMin()
		m.syncStatus()
		return m, nil

	case key.Matches(msg, m.keys.ToggleMax):
		m.sess.ToggleMax()
		m.syncStatus()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.runList.MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.runList.MoveDown()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m, m.selectRun(m.runList.Select())

	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.Prev()
		m.syncStatus()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Next()
		m.syncStatus()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		theme := m.sess.CycleTheme()
		styles.Apply(styles.ForName(theme))
		m.syncStatus()
		return m, m.setStatus(fmt.Sprintf("theme: %s", theme), false)
	}

	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.sess.Close()
	return m, tea.Quit
}

func (m *Model) selectRun(i int) tea.Cmd {
	if i == m.sess.Selected() {
		return nil
	}
	if err := m.sess.Select(i); err != nil {
		logging.Error("select run failed", "index", i, "error", err)
		m.runList.SetSelected(m.sess.Selected())
		return m.setStatus(err.Error(), true)
	}
	m.syncSelection()
	return nil
}

// syncSelection pushes the session's selected run into the header, tab
// bar and status bar.
func (m *Model) syncSelection() {
	t := m.sess.SelectedTable()
	m.header.SetData(components.HeaderData{
		Root: m.root,
		Run:  t.Name,
		Rows: t.Len(),
		Runs: len(m.sess.Runs()),
	})
	m.tabs.SetItems(m.sess.VisibleMetrics())
	m.syncStatus()
}

func (m *Model) syncStatus() {
	m.statusBar.SetTheme(string(m.sess.Theme()))
	m.statusBar.SetShortcuts(m.help.ShortHelpView(m.keys.ShortHelp()))
	if p := m.activePlot(); p != nil {
		m.statusBar.SetAnnotations(p.Metric, p.ShowMin, p.ShowMax)
	} else {
		m.statusBar.SetAnnotations("", false, false)
	}
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	if isError {
		m.statusBar.SetError(text)
	} else {
		m.statusBar.SetMessage(text)
	}
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(_ time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) activePlot() *session.Plot {
	p, ok := m.sess.Plot(m.tabs.Active())
	if !ok {
		return nil
	}
	return p
}

// resize recomputes component sizes for a width x height window.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.help.Width = width

	bodyHeight := max(height-headerHeight-statusBarHeight, 0)
	listWidth := m.runListWidth()

	// Boxes take one cell of border on each side.
	m.runList.SetSize(max(listWidth-2, 1), max(bodyHeight-2, 1))
	rightWidth := max(width-listWidth, 0)
	m.tabs.SetWidth(rightWidth)
	m.plotWidth = max(rightWidth-2, 0)
	m.plotHeight = max(bodyHeight-tabsHeight-2, 0)
	m.helpOverlay.SetSize(min(60, width), min(25, height))
	m.syncStatus()
}

func (m *Model) runListWidth() int {
	w := m.width / 4
	return min(max(w, minRunListWidth), maxRunListWidth)
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading…"
	}

	if m.helpOverlay.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.helpOverlay.View())
	}

	bodyHeight := max(m.height-headerHeight-statusBarHeight, 0)
	listWidth := m.runListWidth()

	left := styles.FocusedBoxStyle.
		Width(max(listWidth-2, 0)).
		Height(max(bodyHeight-2, 0)).
		Render(m.runList.View())

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.tabs.View(),
		styles.BoxStyle.
			Width(m.plotWidth).
			Height(m.plotHeight).
			Render(m.plotView()),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return strings.Join([]string{m.header.View(), body, m.statusBar.View()}, "\n")
}

func (m *Model) plotView() string {
	p := m.activePlot()
	if p == nil {
		return styles.MutedTextStyle.Render("no metric selected")
	}
	out := p.View(m.plotWidth, m.plotHeight, styles.Current.PlotPalette())
	if out == "" {
		return styles.MutedTextStyle.Render("window too small")
	}
	return out
}

// Run starts the TUI and blocks until it exits.
func Run(ctx session.Context) error {
	m, err := New(ctx)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
