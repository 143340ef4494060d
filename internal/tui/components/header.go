// Package components provides the building blocks of the tbtui screen.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Fjolfrin/tbtui/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	Root string
	Run  string
	Rows int
	Runs int
}

// Header is a component that displays the loaded root and selected run.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{
		data: HeaderData{
			Root: ".",
			Run:  "-",
		},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetRun sets the selected run and its row count.
func (h *Header) SetRun(name string, rows int) {
	h.data.Run = name
	h.data.Rows = rows
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("TBTUI")

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	rootLabel := styles.HeaderLabelStyle.Render("Root: ")
	rootValue := styles.HeaderValueStyle.Render(h.data.Root)

	runLabel := styles.HeaderLabelStyle.Render("Run: ")
	runValue := styles.HeaderValueStyle.Render(h.data.Run)

	rowsLabel := styles.HeaderLabelStyle.Render("Epochs: ")
	rowsValue := styles.HeaderValueStyle.Render(fmt.Sprintf("%d", h.data.Rows))

	content := fmt.Sprintf("%s%s%s%s%s%s%s%s%s%s",
		title, sep,
		rootLabel, rootValue, sep,
		runLabel, runValue, sep,
		rowsLabel, rowsValue,
	)

	if h.data.Runs > 0 {
		runsLabel := styles.HeaderLabelStyle.Render("Runs: ")
		runsValue := styles.HeaderValueStyle.Render(fmt.Sprintf("%d", h.data.Runs))
		content = fmt.Sprintf("%s%s%s%s", content, sep, runsLabel, runsValue)
	}

	headerStyle := lipgloss.NewStyle().
		Background(styles.Primary).
		Foreground(styles.Foreground).
		Padding(0, 1)

	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width).MaxHeight(1)
	}

	return headerStyle.Render(content)
}
