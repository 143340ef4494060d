package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Fjolfrin/tbtui/internal/history"
	"github.com/Fjolfrin/tbtui/internal/tui/styles"
)

// RunListItem is one entry of the run selector.
type RunListItem struct {
	Name    string
	Rows    int
	Metrics int
}

// RunList is a scrollable radio list of runs. The cursor moves freely;
// the selected run only changes on Select.
type RunList struct {
	items       []RunListItem
	cursor      int
	selected    int
	height      int
	width       int
	scrollStart int
	focused     bool
}

// NewRunList creates a new RunList component.
func NewRunList() *RunList {
	return &RunList{
		height:  10,
		focused: true,
	}
}

// SetItems updates the list items.
func (r *RunList) SetItems(items []RunListItem) {
	r.items = items
	r.cursor = clampIndex(r.cursor, len(items))
	r.selected = clampIndex(r.selected, len(items))
	r.updateScroll()
}

// SetRuns builds one item per table.
func (r *RunList) SetRuns(runs []*history.Table) {
	items := make([]RunListItem, len(runs))
	for i, t := range runs {
		items[i] = RunListItem{Name: t.Name, Rows: t.Len(), Metrics: len(t.Metrics)}
	}
	r.SetItems(items)
}

// Len returns the number of items.
func (r *RunList) Len() int {
	return len(r.items)
}

// Cursor returns the cursor index.
func (r *RunList) Cursor() int {
	return r.cursor
}

// Selected returns the selected (radio-on) index.
func (r *RunList) Selected() int {
	return r.selected
}

// Select marks the item under the cursor as selected and returns its index.
func (r *RunList) Select() int {
	r.selected = r.cursor
	return r.selected
}

// SetSelected sets both the cursor and the selected index.
func (r *RunList) SetSelected(index int) {
	if index >= 0 && index < len(r.items) {
		r.selected = index
		r.cursor = index
		r.updateScroll()
	}
}

// MoveUp moves the cursor up.
func (r *RunList) MoveUp() {
	if r.cursor > 0 {
		r.cursor--
		r.updateScroll()
	}
}

// MoveDown moves the cursor down.
func (r *RunList) MoveDown() {
	if r.cursor < len(r.items)-1 {
		r.cursor++
		r.updateScroll()
	}
}

// SetSize sets both width and height.
func (r *RunList) SetSize(width, height int) {
	r.width = width
	r.height = max(height, 1)
	r.updateScroll()
}

// SetFocused sets whether the list is focused.
func (r *RunList) SetFocused(focused bool) {
	r.focused = focused
}

// updateScroll ensures the cursor is visible.
func (r *RunList) updateScroll() {
	if r.cursor < r.scrollStart {
		r.scrollStart = r.cursor
	}
	if r.cursor >= r.scrollStart+r.height {
		r.scrollStart = r.cursor - r.height + 1
	}
	if r.scrollStart < 0 {
		r.scrollStart = 0
	}
}

// View renders the list.
func (r *RunList) View() string {
	if len(r.items) == 0 {
		return styles.MutedTextStyle.Italic(true).Render("No runs")
	}

	endIndex := min(r.scrollStart+r.height, len(r.items))

	var lines []string
	if r.scrollStart > 0 {
		lines = append(lines, styles.MutedTextStyle.Render("  ↑ more above"))
	}
	for i := r.scrollStart; i < endIndex; i++ {
		lines = append(lines, r.renderItem(r.items[i], i))
	}
	if endIndex < len(r.items) {
		lines = append(lines, styles.MutedTextStyle.Render("  ↓ more below"))
	}

	return strings.Join(lines, "\n")
}

func (r *RunList) renderItem(item RunListItem, index int) string {
	radio := styles.RadioOff
	if index == r.selected {
		radio = styles.RadioOn
	}

	cursor := " "
	if index == r.cursor && r.focused {
		cursor = lipgloss.NewStyle().
			Foreground(styles.Secondary).
			Bold(true).
			Render("▶")
	}

	nameStyle := lipgloss.NewStyle().Foreground(styles.Foreground)
	if index == r.selected {
		nameStyle = nameStyle.Bold(true)
	}
	rows := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(fmt.Sprintf(" (%d)", item.Rows))

	name := item.Name
	if r.width > 0 {
		name = truncateString(name, max(r.width-10, 4))
	}

	line := fmt.Sprintf("%s %s %s%s", cursor, radio, nameStyle.Render(name), rows)

	lineStyle := lipgloss.NewStyle()
	if index == r.cursor && r.focused {
		lineStyle = lineStyle.Background(styles.Background)
	}
	if r.width > 0 {
		lineStyle = lineStyle.Width(r.width).MaxWidth(r.width)
	}
	return lineStyle.Render(line)
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// truncateString truncates a string to maxLen runes.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-1]) + "…"
}
