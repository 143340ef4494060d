package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Fjolfrin/tbtui/internal/tui/styles"
)

// Shortcut is one key and what it does.
type Shortcut struct {
	Key  string
	Desc string
}

// ShortcutGroup is a titled column in the help overlay.
type ShortcutGroup struct {
	Title     string
	Shortcuts []Shortcut
}

// GroupFromBindings builds a group from the help text of enabled bindings.
func GroupFromBindings(title string, bindings ...key.Binding) ShortcutGroup {
	g := ShortcutGroup{Title: title}
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		g.Shortcuts = append(g.Shortcuts, Shortcut{Key: h.Key, Desc: h.Desc})
	}
	return g
}

// HelpClosedMsg reports that the overlay closed itself.
type HelpClosedMsg struct{}

var closeHelp = key.NewBinding(key.WithKeys("esc", "?", "q"))

// HelpOverlay lists every key binding, two groups per row. While visible it
// takes all key input; closing keys hide it.
type HelpOverlay struct {
	groups  []ShortcutGroup
	visible bool
	width   int
	height  int
}

func NewHelpOverlay(groups ...ShortcutGroup) *HelpOverlay {
	return &HelpOverlay{groups: groups, width: 60, height: 20}
}

// SetSize bounds the rendered box.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width, h.height = width, height
}

func (h *HelpOverlay) Show()           { h.visible = true }
func (h *HelpOverlay) Hide()           { h.visible = false }
func (h *HelpOverlay) Toggle()         { h.visible = !h.visible }
func (h *HelpOverlay) IsVisible() bool { return h.visible }

func (h *HelpOverlay) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, closeHelp) {
		h.Hide()
		return func() tea.Msg { return HelpClosedMsg{} }
	}
	return nil
}

func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	inner := max(h.width-6, 0)
	colWidth := max(inner/2, 0)

	var rows []string
	for i := 0; i < len(h.groups); i += 2 {
		left := lipgloss.NewStyle().Width(colWidth).Render(renderGroup(h.groups[i]))
		if i+1 == len(h.groups) {
			rows = append(rows, left)
			continue
		}
		right := renderGroup(h.groups[i+1])
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Keys"),
		"",
		strings.Join(rows, "\n\n"),
		"",
		styles.MutedTextStyle.Italic(true).Render("? or esc to close"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2).
		MaxHeight(max(h.height, 0)).
		Render(body)
}

// renderGroup draws a title and its shortcuts, keys padded to the widest
// key in the group.
func renderGroup(g ShortcutGroup) string {
	keyWidth := 0
	for _, s := range g.Shortcuts {
		keyWidth = max(keyWidth, lipgloss.Width(s.Key))
	}

	lines := []string{lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true).Render(g.Title)}
	for _, s := range g.Shortcuts {
		k := styles.KeyStyle.Width(keyWidth).Render(s.Key)
		lines = append(lines, "  "+k+"  "+styles.HelpStyle.Render(s.Desc))
	}
	return strings.Join(lines, "\n")
}
