package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Fjolfrin/tbtui/internal/tui/styles"
)

// Tabs is a horizontal tab bar with one active tab.
type Tabs struct {
	items  []string
	active int
	width  int
}

// NewTabs creates an empty tab bar.
func NewTabs() *Tabs {
	return &Tabs{}
}

// SetItems replaces the tabs. The active tab keeps its name when it is
// still present; otherwise the first tab becomes active.
func (t *Tabs) SetItems(items []string) {
	current := t.Active()
	t.items = append([]string(nil), items...)
	t.active = 0
	for i, it := range t.items {
		if it == current {
			t.active = i
			break
		}
	}
}

// Items returns the tab names.
func (t *Tabs) Items() []string {
	return t.items
}

// Active returns the active tab name, or "" when there are no tabs.
func (t *Tabs) Active() string {
	if t.active < 0 || t.active >= len(t.items) {
		return ""
	}
	return t.items[t.active]
}

// ActiveIndex returns the active tab index.
func (t *Tabs) ActiveIndex() int {
	return t.active
}

// Next activates the next tab, wrapping around.
func (t *Tabs) Next() {
	if len(t.items) > 0 {
		t.active = (t.active + 1) % len(t.items)
	}
}

// Prev activates the previous tab, wrapping around.
func (t *Tabs) Prev() {
	if len(t.items) > 0 {
		t.active = (t.active - 1 + len(t.items)) % len(t.items)
	}
}

// SetWidth sets the bar width.
func (t *Tabs) SetWidth(width int) {
	t.width = width
}

// View renders the tab bar.
func (t *Tabs) View() string {
	if len(t.items) == 0 {
		return styles.MutedTextStyle.Render("no metrics")
	}

	parts := make([]string, len(t.items))
	for i, it := range t.items {
		if i == t.active {
			parts[i] = styles.ActiveTabStyle.Render(it)
		} else {
			parts[i] = styles.TabStyle.Render(it)
		}
	}
	bar := strings.Join(parts, lipgloss.NewStyle().Foreground(styles.Muted).Render("│"))
	if t.width > 0 {
		bar = lipgloss.NewStyle().MaxWidth(t.width).Render(bar)
	}
	return bar
}
