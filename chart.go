package main

import (
	"bytes"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/andareed/siftly-plot/series"
)

var chartPalette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorOrange,
	chart.ColorCyan,
	chart.ColorYellow,
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 1.5,
		StrokeColor: col,
	}
}

// buildChartSeries turns the filtered rows into one time series per selected
// field, x = timestamp, y = field value.
func buildChartSeries(tbl *series.Table, fields []string) []chart.Series {
	out := make([]chart.Series, 0, len(fields))
	for i, name := range fields {
		idx := tbl.FieldIndex(name)
		if idx < 0 {
			continue
		}

		times := make([]time.Time, 0, tbl.Len())
		ys := make([]float64, 0, tbl.Len())
		for _, row := range tbl.Rows {
			times = append(times, row.Timestamp)
			ys = append(ys, row.Values[idx])
		}

		st := lineStyle(chartPalette[i%len(chartPalette)])
		if len(times) == 1 {
			// Pad to at least two X values for go-chart
			times = append(times, times[0].Add(time.Second))
			ys = append(ys, ys[0])
		}
		out = append(out, chart.TimeSeries{Name: name, XValues: times, YValues: ys, Style: st})
	}
	return out
}

// renderChartPNG writes the filtered rows as a PNG line chart.
func renderChartPNG(tbl *series.Table, fields []string, path string) error {
	ch := chart.Chart{
		Width:      1200,
		Height:     600,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 24}},
		XAxis:      chart.XAxis{Name: "Time"},
		YAxis:      chart.YAxis{Name: "Value"},
		Series:     buildChartSeries(tbl, fields),
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
