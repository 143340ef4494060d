package components

import (
	"strings"
	"testing"
)

func TestNewHeader(t *testing.T) {
	h := NewHeader()
	if h == nil {
		t.Fatal("NewHeader returned nil")
	}

	view := h.View()
	if !strings.Contains(view, "TBTUI") {
		t.Error("Header should contain the app title")
	}
}

func TestHeaderSetData(t *testing.T) {
	h := NewHeader()
	h.SetData(HeaderData{
		Root: "experiments",
		Run:  "run1",
		Rows: 10,
		Runs: 3,
	})

	view := h.View()

	for _, want := range []string{"experiments", "run1", "10", "Runs: 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("Header should contain %q", want)
		}
	}
}

func TestHeaderSetRun(t *testing.T) {
	h := NewHeader()
	h.SetRun("baseline", 42)

	view := h.View()
	if !strings.Contains(view, "baseline") {
		t.Error("Header should contain run name 'baseline'")
	}
	if !strings.Contains(view, "42") {
		t.Error("Header should contain the epoch count")
	}
}

func TestHeaderHidesRunCountWhenUnset(t *testing.T) {
	h := NewHeader()
	if strings.Contains(h.View(), "Runs:") {
		t.Error("Header should not show a run count of zero")
	}
}
