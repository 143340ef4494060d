package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Fjolfrin/tbtui/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Metric  string
	ShowMin bool
	ShowMax bool
	Theme   string
	Message string
	IsError bool
	// Shortcuts is the pre-rendered short help line.
	Shortcuts string
}

// StatusBar displays the active plot's annotation flags, the theme, an
// optional message and keyboard shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// SetAnnotations sets the annotation flags shown for the active plot.
func (s *StatusBar) SetAnnotations(metric string, showMin, showMax bool) {
	s.data.Metric = metric
	s.data.ShowMin = showMin
	s.data.ShowMax = showMax
}

// SetTheme sets the theme name.
func (s *StatusBar) SetTheme(theme string) {
	s.data.Theme = theme
}

// SetMessage sets an informational message.
func (s *StatusBar) SetMessage(message string) {
	s.data.Message = message
	s.data.IsError = false
}

// SetError sets an error message.
func (s *StatusBar) SetError(message string) {
	s.data.Message = message
	s.data.IsError = true
}

// ClearMessage removes the message.
func (s *StatusBar) ClearMessage() {
	s.data.Message = ""
	s.data.IsError = false
}

// Message returns the current message.
func (s *StatusBar) Message() string {
	return s.data.Message
}

// SetShortcuts sets the pre-rendered shortcut line.
func (s *StatusBar) SetShortcuts(shortcuts string) {
	s.data.Shortcuts = shortcuts
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	parts := []string{}
	if s.data.Metric != "" {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(styles.Foreground).
			Bold(true).
			Render(s.data.Metric))
	}
	parts = append(parts,
		s.renderFlag("min", s.data.ShowMin),
		s.renderFlag("max", s.data.ShowMax),
	)
	if s.data.Theme != "" {
		parts = append(parts, styles.HeaderLabelStyle.Render("theme: ")+
			lipgloss.NewStyle().Foreground(styles.Secondary).Render(s.data.Theme))
	}
	if s.data.Message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Italic(true)
		if s.data.IsError {
			msgStyle = styles.ErrorTextStyle
		}
		parts = append(parts, msgStyle.Render(s.data.Message))
	}
	leftContent := strings.Join(parts, sep)
	rightContent := s.data.Shortcuts

	containerStyle := lipgloss.NewStyle().
		Background(styles.Background).
		Padding(0, 1)

	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width).MaxHeight(1)

		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(rightContent)
		padding := s.width - leftWidth - rightWidth - 2 // container padding
		if padding > 0 {
			return containerStyle.Render(leftContent + strings.Repeat(" ", padding) + rightContent)
		}
		// Not enough room: shortcuts are dropped first.
		return containerStyle.Render(leftContent)
	}

	return containerStyle.Render(leftContent + "  " + rightContent)
}

func (s *StatusBar) renderFlag(name string, on bool) string {
	if on {
		return lipgloss.NewStyle().Foreground(styles.Accent).Render("● " + name)
	}
	return lipgloss.NewStyle().Foreground(styles.Muted).Render("○ " + name)
}
