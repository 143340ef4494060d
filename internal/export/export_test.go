package export

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/Fjolfrin/tbtui/internal/history"
)

func testRuns() []*history.Table {
	return []*history.Table{
		history.NewTable("run1", "run1_history.csv", []int{0, 1, 2, 3},
			[]string{"loss", "acc"},
			map[string][]float64{"loss": {3, 1, 1, 5}, "acc": {0.1, 0.4, math.NaN(), 0.4}}),
		history.NewTable("run2", "run2_history.csv", []int{0, 1},
			[]string{"loss"},
			map[string][]float64{"loss": {2, 1}}),
	}
}

func TestLineData(t *testing.T) {
	data := lineData([]float64{1, math.NaN(), 3})
	if data[0].Value != 1.0 || data[1].Value != "-" || data[2].Value != 3.0 {
		t.Errorf("lineData = %+v", data)
	}
}

func TestMarkers(t *testing.T) {
	if got := len(markers([]float64{3, 1, 1, 5})); got != 4 {
		t.Errorf("got %d marker options, want a point and a line for min and max", got)
	}
	if got := len(markers([]float64{math.NaN()})); got != 0 {
		t.Errorf("all-NaN series should have no markers, got %d", got)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testRuns(), DefaultOptions()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, "<html") {
		t.Fatal("output should be an HTML page")
	}
	if got := strings.Count(html, "echarts.init("); got != 3 {
		t.Errorf("got %d charts, want one per (run, metric) = 3", got)
	}
	for _, want := range []string{"loss_plot", "acc_plot", "Min: 1.000 @ epoch: 1", "Max: 5.000 @ epoch: 3"} {
		if !strings.Contains(html, want) {
			t.Errorf("page should contain %q", want)
		}
	}
}

func TestWriteInfiniteValues(t *testing.T) {
	runs := []*history.Table{
		history.NewTable("run", "run_history.csv", []int{0, 1, 2}, []string{"loss"},
			map[string][]float64{"loss": {1.0, math.Inf(1), 0.5}}),
	}
	var buf bytes.Buffer
	if err := Write(&buf, runs, DefaultOptions()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	html := buf.String()

	if strings.Contains(html, "Inf") {
		t.Error("infinite values should not reach the chart options")
	}
	for _, want := range []string{"Max: 1.000 @ epoch: 0", "Min: 0.500 @ epoch: 2"} {
		if !strings.Contains(html, want) {
			t.Errorf("page should contain %q", want)
		}
	}
	for _, line := range strings.Split(html, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "let option_") && strings.HasSuffix(strings.TrimSpace(line), "=") {
			t.Errorf("chart option failed to encode: %q", line)
		}
	}
}
