package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-plot/series"
)

func mainTs(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	require.NoError(t, err)
	return ts
}

func telemetryTable(t *testing.T) *series.Table {
	t.Helper()
	tbl, err := series.NewTable(
		[]string{"Suction Pressure", "Discharge Pressure", "Motor Current"},
		[]series.Row{
			{Timestamp: mainTs(t, "2024-03-14 00:00"), Values: []float64{3.1, 11.2, 41.0}},
			{Timestamp: mainTs(t, "2024-03-14 01:00"), Values: []float64{3.3, 11.8, 42.5}},
			{Timestamp: mainTs(t, "2024-03-14 02:00"), Values: []float64{3.2, 11.5, 42.0}},
		},
	)
	require.NoError(t, err)
	return tbl
}

func TestNewModelDefaults(t *testing.T) {
	m := newModel(telemetryTable(t), "")

	assert.Equal(t, []bool{true, true, false}, m.data.selected)
	require.True(t, m.data.windowSet)
	assert.Equal(t, mainTs(t, "2024-03-14 00:00"), m.data.window.Start)
	assert.Equal(t, mainTs(t, "2024-03-14 02:00"), m.data.window.End)
	assert.Nil(t, m.data.displayed)
}

func TestRunRefreshPublishesResult(t *testing.T) {
	m := newModel(telemetryTable(t), "")

	m.runRefresh()

	require.NotNil(t, m.data.displayed)
	assert.Equal(t, 3, m.data.displayed.Filtered.Len())
	assert.Equal(t, []string{"Suction Pressure", "Discharge Pressure"}, m.data.displayed.Fields)
	require.Len(t, m.data.displayed.Summary, 2)
	assert.Equal(t, "Suction Pressure", m.data.displayed.Summary[0].Field)
	assert.InDelta(t, 3.1, m.data.displayed.Summary[0].Min, 1e-9)
	assert.InDelta(t, 3.3, m.data.displayed.Summary[0].Max, 1e-9)
}

func TestRunRefreshNarrowedWindow(t *testing.T) {
	m := newModel(telemetryTable(t), "")
	m.runRefresh()

	m.data.window = series.TimeRange{
		Start: mainTs(t, "2024-03-14 01:00"),
		End:   mainTs(t, "2024-03-14 01:00"),
	}
	m.runRefresh()

	require.NotNil(t, m.data.displayed)
	assert.Equal(t, 1, m.data.displayed.Filtered.Len())
	assert.InDelta(t, 3.3, m.data.displayed.Summary[0].Mean, 1e-9)
}

func TestRunRefreshInvertedWindowKeepsLastResult(t *testing.T) {
	m := newModel(telemetryTable(t), "")
	m.runRefresh()
	before := m.data.displayed
	require.NotNil(t, before)

	m.data.window = series.TimeRange{
		Start: mainTs(t, "2024-03-14 02:00"),
		End:   mainTs(t, "2024-03-14 00:00"),
	}
	m.runRefresh()

	assert.Same(t, before, m.data.displayed)
	assert.Equal(t, "Start is after end", m.ui.noticeMsg)
	assert.Equal(t, "error", m.ui.noticeType)
}

func TestRunRefreshEmptyWindowKeepsLastResult(t *testing.T) {
	m := newModel(telemetryTable(t), "")
	m.runRefresh()
	before := m.data.displayed

	m.data.window = series.TimeRange{
		Start: mainTs(t, "2024-03-15 00:00"),
		End:   mainTs(t, "2024-03-15 12:00"),
	}
	m.runRefresh()

	assert.Same(t, before, m.data.displayed)
	assert.Equal(t, "No data in the selected range", m.ui.noticeMsg)
}

func TestRunRefreshEmptySelectionKeepsLastResult(t *testing.T) {
	m := newModel(telemetryTable(t), "")
	m.runRefresh()
	before := m.data.displayed

	m.data.selected = []bool{false, false, false}
	m.runRefresh()

	assert.Same(t, before, m.data.displayed)
	assert.Equal(t, "Select at least one field", m.ui.noticeMsg)
}

func TestDefaultSelectionSingleField(t *testing.T) {
	tbl, err := series.NewTable([]string{"Load"}, []series.Row{
		{Timestamp: mainTs(t, "2024-03-14 00:00"), Values: []float64{1}},
	})
	require.NoError(t, err)

	assert.Equal(t, []bool{true}, defaultSelection(tbl))
}

func TestApplyFieldSelectionRejectsEmptyDraft(t *testing.T) {
	m := newModel(telemetryTable(t), "")
	m.runRefresh()

	m.openFieldsDrawer()
	m.ui.fields.draft = []bool{false, false, false}
	m.applyFieldSelection()

	assert.True(t, m.ui.fields.open, "drawer should stay open on an empty draft")
	assert.NotEmpty(t, m.ui.fields.errorMsg)
	assert.Equal(t, []bool{true, true, false}, m.data.selected)
}
