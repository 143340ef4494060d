// Package report summarizes loaded runs: per metric, the first-occurrence
// minimum and maximum and where they happen.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	tberrors "github.com/Fjolfrin/tbtui/internal/errors"
	"github.com/Fjolfrin/tbtui/internal/history"
	"github.com/Fjolfrin/tbtui/internal/plot"
)

// Format is an output format for Write.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	opts := make([]string, len(Formats))
	for i, f := range Formats {
		opts[i] = string(f)
	}
	return "", tberrors.ConfigValidationError("output", fmt.Sprintf("unknown output format %q", s), opts)
}

// Extremum is a value and the row it was found at.
type Extremum struct {
	Value float64 `json:"value" yaml:"value"`
	// Index is the row position, which is what the plots label as the epoch.
	Index int `json:"index" yaml:"index"`
	// Epoch is the epoch column value at Index.
	Epoch int `json:"epoch" yaml:"epoch"`
}

// Metric summarizes one metric column.
type Metric struct {
	Name string    `json:"name" yaml:"name"`
	Min  *Extremum `json:"min,omitempty" yaml:"min,omitempty"`
	Max  *Extremum `json:"max,omitempty" yaml:"max,omitempty"`
}

// Run summarizes one history file.
type Run struct {
	Name    string   `json:"name" yaml:"name"`
	Path    string   `json:"path" yaml:"path"`
	Rows    int      `json:"rows" yaml:"rows"`
	Metrics []Metric `json:"metrics" yaml:"metrics"`
}

// Summarize builds a summary per run, keeping run and column order.
// Metrics without any finite value have no Min or Max.
func Summarize(runs []*history.Table) []Run {
	out := make([]Run, 0, len(runs))
	for _, t := range runs {
		r := Run{Name: t.Name, Path: t.Path, Rows: t.Len()}
		for _, name := range t.Metrics {
			y, _ := t.Column(name)
			m := Metric{Name: name}
			if i, ok := plot.ArgMin(y); ok {
				m.Min = extremum(t, y, i)
			}
			if i, ok := plot.ArgMax(y); ok {
				m.Max = extremum(t, y, i)
			}
			r.Metrics = append(r.Metrics, m)
		}
		out = append(out, r)
	}
	return out
}

func extremum(t *history.Table, y []float64, i int) *Extremum {
	return &Extremum{Value: y[i], Index: i, Epoch: t.Epochs[i]}
}

// Write encodes runs to w in format.
func Write(w io.Writer, runs []Run, format Format) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(runs); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return enc.Close()
	case FormatText, "":
		return writeText(w, runs)
	default:
		_, err := ParseFormat(string(format))
		return err
	}
}

func writeText(w io.Writer, runs []Run) error {
	header := lipgloss.NewStyle().Bold(true)
	for i, r := range runs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		title := fmt.Sprintf("%s  (%s, %d rows)", r.Name, r.Path, r.Rows)
		if _, err := fmt.Fprintln(w, header.Render(title)); err != nil {
			return err
		}

		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("metric", "min", "min epoch", "max", "max epoch")
		for _, m := range r.Metrics {
			tbl.Row(m.Name, value(m.Min), epoch(m.Min), value(m.Max), epoch(m.Max))
		}
		if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
			return err
		}
	}
	return nil
}

func value(e *Extremum) string {
	if e == nil {
		return "-"
	}
	return strconv.FormatFloat(e.Value, 'f', 3, 64)
}

func epoch(e *Extremum) string {
	if e == nil {
		return "-"
	}
	return strconv.Itoa(e.Epoch)
}
