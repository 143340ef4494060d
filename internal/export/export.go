// Package export renders loaded runs as a self-contained HTML page of
// line charts.
package export

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Fjolfrin/tbtui/internal/history"
	"github.com/Fjolfrin/tbtui/internal/logging"
	"github.com/Fjolfrin/tbtui/internal/plot"
)

// Options controls the exported page.
type Options struct {
	// Title is the HTML page title.
	Title string
	// Height is the CSS height of each chart.
	Height string
}

// DefaultOptions returns the default page options.
func DefaultOptions() Options {
	return Options{Title: "tbtui", Height: "400px"}
}

// Page builds one line chart per (run, metric), in run then column order.
func Page(runs []*history.Table, o Options) *components.Page {
	page := components.NewPage()
	page.PageTitle = o.Title

	n := 0
	for _, t := range runs {
		for _, metric := range t.Metrics {
			page.AddCharts(LineChart(t, metric, o))
			n++
		}
	}
	logging.Debug("export page built", "runs", len(runs), "charts", n)
	return page
}

// Write renders the page for runs to w.
func Write(w io.Writer, runs []*history.Table, o Options) error {
	if err := Page(runs, o).Render(w); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}

// LineChart charts one metric of t. The first-occurrence minimum and
// maximum are marked the same way the terminal plot labels them.
func LineChart(t *history.Table, metric string, o Options) *charts.Line {
	y, _ := t.Column(metric)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s_plot", metric),
			Subtitle: t.Name,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "epoch",
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  metric,
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: o.Height,
		}),
	)

	xLabels := make([]string, len(y))
	for i := range y {
		xLabels[i] = strconv.Itoa(i)
	}
	line.SetXAxis(xLabels)

	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(false),
		}),
	}
	seriesOpts = append(seriesOpts, markers(y)...)
	line.AddSeries(metric, lineData(y), seriesOpts...)
	return line
}

// lineData converts y to chart points. NaN has no JSON encoding, so
// missing values use the "-" placeholder the chart treats as a gap.
func lineData(y []float64) []opts.LineData {
	data := make([]opts.LineData, len(y))
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			data[i] = opts.LineData{Value: "-"}
			continue
		}
		data[i] = opts.LineData{Value: v}
	}
	return data
}

func markers(y []float64) []charts.SeriesOpts {
	var out []charts.SeriesOpts
	add := func(kind string, i int) {
		label := fmt.Sprintf("%s: %.3f @ epoch: %d", kind, y[i], i)
		out = append(out,
			charts.WithMarkPointNameCoordItemOpts(opts.MarkPointNameCoordItem{
				Name:       label,
				Coordinate: []interface{}{strconv.Itoa(i), y[i]},
			}),
			charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
				Name:  kind,
				XAxis: strconv.Itoa(i),
			}),
		)
	}
	if i, ok := plot.ArgMin(y); ok {
		add("Min", i)
	}
	if i, ok := plot.ArgMax(y); ok {
		add("Max", i)
	}
	return out
}
