package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/andareed/siftly-plot/series"
)

func TestBuildChartSeriesOnePerField(t *testing.T) {
	out := buildChartSeries(telemetryTable(t), []string{"Motor Current", "Suction Pressure"})
	require.Len(t, out, 2)

	first, ok := out[0].(chart.TimeSeries)
	require.True(t, ok)
	assert.Equal(t, "Motor Current", first.Name)
	assert.Len(t, first.XValues, 3)
	assert.Equal(t, []float64{41.0, 42.5, 42.0}, first.YValues)
}

func TestBuildChartSeriesSkipsUnknownField(t *testing.T) {
	out := buildChartSeries(telemetryTable(t), []string{"Oil Pressure", "Motor Current"})
	require.Len(t, out, 1)
	assert.Equal(t, "Motor Current", out[0].(chart.TimeSeries).Name)
}

func TestBuildChartSeriesPadsSinglePoint(t *testing.T) {
	tbl, err := series.NewTable([]string{"Load"}, []series.Row{
		{Timestamp: mainTs(t, "2024-03-14 12:00"), Values: []float64{7.5}},
	})
	require.NoError(t, err)

	out := buildChartSeries(tbl, []string{"Load"})
	require.Len(t, out, 1)

	ts := out[0].(chart.TimeSeries)
	require.Len(t, ts.XValues, 2)
	assert.Equal(t, []float64{7.5, 7.5}, ts.YValues)
	assert.True(t, ts.XValues[1].After(ts.XValues[0]))
}

func TestRenderChartPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, renderChartPNG(telemetryTable(t), []string{"Suction Pressure"}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}
