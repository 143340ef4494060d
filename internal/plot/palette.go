package plot

import "github.com/charmbracelet/lipgloss"

// Palette maps figure roles to terminal colors.
type Palette struct {
	Line       lipgloss.TerminalColor
	Annotation lipgloss.TerminalColor
	Grid       lipgloss.TerminalColor
	Axis       lipgloss.TerminalColor
	Title      lipgloss.TerminalColor
}

// DefaultPalette is used when a caller passes a zero Palette.
func DefaultPalette() Palette {
	return Palette{
		Line:       lipgloss.Color("#06B6D4"),
		Annotation: lipgloss.Color("#EF4444"),
		Grid:       lipgloss.Color("#374151"),
		Axis:       lipgloss.Color("#9CA3AF"),
		Title:      lipgloss.Color("#F9FAFB"),
	}
}

func (p Palette) color(r Role) lipgloss.TerminalColor {
	switch r {
	case RoleLine:
		return p.Line
	case RoleAnnotation:
		return p.Annotation
	case RoleGrid:
		return p.Grid
	default:
		return p.Axis
	}
}

func (p Palette) isZero() bool {
	return p.Line == nil && p.Annotation == nil && p.Grid == nil && p.Axis == nil && p.Title == nil
}
