// Package styles provides Lip Gloss styles for the tbtui interface.
//
// The style variables are rebuilt by Apply when the theme changes, so
// components should read them at render time rather than caching them.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Fjolfrin/tbtui/internal/config"
	"github.com/Fjolfrin/tbtui/internal/plot"
)

// Theme is a named color palette.
type Theme struct {
	Name config.ThemeName

	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Accent      lipgloss.Color
	Error       lipgloss.Color
	Muted       lipgloss.Color
	MutedLight  lipgloss.Color
	Background  lipgloss.Color
	Foreground  lipgloss.Color
	BorderColor lipgloss.Color
}

// Dark is the default theme.
var Dark = Theme{
	Name:        config.ThemeDark,
	Primary:     lipgloss.Color("#7C3AED"), // Purple
	Secondary:   lipgloss.Color("#06B6D4"), // Cyan
	Accent:      lipgloss.Color("#F59E0B"), // Amber
	Error:       lipgloss.Color("#EF4444"), // Red
	Muted:       lipgloss.Color("#6B7280"), // Gray
	MutedLight:  lipgloss.Color("#9CA3AF"), // Light Gray
	Background:  lipgloss.Color("#1F2937"), // Dark Gray
	Foreground:  lipgloss.Color("#F9FAFB"), // White
	BorderColor: lipgloss.Color("#374151"), // Border Gray
}

// Light suits light terminal backgrounds.
var Light = Theme{
	Name:        config.ThemeLight,
	Primary:     lipgloss.Color("#6D28D9"),
	Secondary:   lipgloss.Color("#0E7490"),
	Accent:      lipgloss.Color("#B45309"),
	Error:       lipgloss.Color("#B91C1C"),
	Muted:       lipgloss.Color("#9CA3AF"),
	MutedLight:  lipgloss.Color("#4B5563"),
	Background:  lipgloss.Color("#E5E7EB"),
	Foreground:  lipgloss.Color("#111827"),
	BorderColor: lipgloss.Color("#D1D5DB"),
}

// ForName returns the theme called name, falling back to Dark.
func ForName(name config.ThemeName) Theme {
	if name == config.ThemeLight {
		return Light
	}
	return Dark
}

// PlotPalette maps the theme onto plot roles.
func (t Theme) PlotPalette() plot.Palette {
	return plot.Palette{
		Line:       t.Secondary,
		Annotation: t.Error,
		Grid:       t.BorderColor,
		Axis:       t.MutedLight,
		Title:      t.Foreground,
	}
}

// Current is the theme the style variables were built from.
var Current Theme

// Color palette for the TUI.
var (
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Accent      lipgloss.Color
	Error       lipgloss.Color
	Muted       lipgloss.Color
	MutedLight  lipgloss.Color
	Background  lipgloss.Color
	Foreground  lipgloss.Color
	BorderColor lipgloss.Color
)

// Header styles.
var (
	// TitleStyle is for the application title.
	TitleStyle lipgloss.Style
	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle lipgloss.Style
	// HeaderValueStyle is for header values.
	HeaderValueStyle lipgloss.Style
)

// Run list icons.
var (
	RadioOn  string
	RadioOff string
)

// Tab styles.
var (
	TabStyle       lipgloss.Style
	ActiveTabStyle lipgloss.Style
)

// Box and text styles.
var (
	// BoxStyle is a standard box with border.
	BoxStyle lipgloss.Style
	// FocusedBoxStyle is a box that's currently focused.
	FocusedBoxStyle lipgloss.Style
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle lipgloss.Style
	// ErrorTextStyle is for error messages.
	ErrorTextStyle lipgloss.Style
	// KeyStyle is for keyboard shortcut keys.
	KeyStyle lipgloss.Style
	// HelpStyle is for help text.
	HelpStyle lipgloss.Style
)

func init() {
	Apply(Dark)
}

// Apply rebuilds every style variable from t.
func Apply(t Theme) {
	Current = t

	Primary = t.Primary
	Secondary = t.Secondary
	Accent = t.Accent
	Error = t.Error
	Muted = t.Muted
	MutedLight = t.MutedLight
	Background = t.Background
	Foreground = t.Foreground
	BorderColor = t.BorderColor

	TitleStyle = lipgloss.NewStyle().
		Foreground(Foreground).
		Background(Primary).
		Bold(true).
		Padding(0, 1)
	HeaderLabelStyle = lipgloss.NewStyle().
		Foreground(MutedLight)
	HeaderValueStyle = lipgloss.NewStyle().
		Foreground(Foreground).
		Bold(true)

	RadioOn = lipgloss.NewStyle().
		Foreground(Secondary).
		Render("◉")
	RadioOff = lipgloss.NewStyle().
		Foreground(Muted).
		Render("○")

	TabStyle = lipgloss.NewStyle().
		Foreground(MutedLight).
		Padding(0, 1)
	ActiveTabStyle = lipgloss.NewStyle().
		Foreground(Foreground).
		Background(Primary).
		Bold(true).
		Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor)
	FocusedBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary)
	MutedTextStyle = lipgloss.NewStyle().
		Foreground(Muted)
	ErrorTextStyle = lipgloss.NewStyle().
		Foreground(Error)
	KeyStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
	HelpStyle = lipgloss.NewStyle().
		Foreground(Muted)
}
