package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/andareed/siftly-plot/series"
)

func TestWriteSummaryXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	stats := []series.SummaryStat{
		{Field: "Suction Pressure", Min: 3.1, Mean: 3.2, Max: 3.3},
		{Field: "Motor Current", Min: 41, Mean: 41.83, Max: 42.5},
	}

	require.NoError(t, writeSummaryXLSX(path, stats))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Field", "Min", "Avg", "Max"}, rows[0])
	assert.Equal(t, "Suction Pressure", rows[1][0])
	assert.Equal(t, "3.1", rows[1][1])
	assert.Equal(t, "Motor Current", rows[2][0])
	assert.Equal(t, "42.5", rows[2][3])
}

func TestWriteRowsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.csv")
	tbl := telemetryTable(t)

	require.NoError(t, writeRowsCSV(path, tbl, []string{"Motor Current", "Suction Pressure"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "datetime,Motor Current,Suction Pressure\n" +
		"2024-03-14 00:00:00,41.00,3.10\n" +
		"2024-03-14 01:00:00,42.50,3.30\n" +
		"2024-03-14 02:00:00,42.00,3.20\n"
	assert.Equal(t, want, string(data))
}

func TestWriteRowsCSVUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.csv")
	err := writeRowsCSV(path, telemetryTable(t), []string{"Oil Pressure"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Oil Pressure")
}

func TestExportArtifactDispatch(t *testing.T) {
	m := newModel(telemetryTable(t), "")
	m.runRefresh()
	dir := t.TempDir()

	require.NoError(t, m.exportArtifact(filepath.Join(dir, "out.xlsx")))
	require.NoError(t, m.exportArtifact(filepath.Join(dir, "out.csv")))
	require.NoError(t, m.exportArtifact(filepath.Join(dir, "out.png")))

	err := m.exportArtifact(filepath.Join(dir, "out.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".txt")
}

func TestExportArtifactBeforeFirstRefresh(t *testing.T) {
	m := newModel(telemetryTable(t), "")
	err := m.exportArtifact(filepath.Join(t.TempDir(), "out.xlsx"))
	require.Error(t, err)
}

func TestDefaultSessionName(t *testing.T) {
	m := newModel(telemetryTable(t), "")
	assert.Equal(t, "session.json", defaultSessionName(m))

	m.data.sourcePath = "/var/data/compressor.csv"
	assert.Equal(t, "compressor.session.json", defaultSessionName(m))
}
