package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetSummaryFlags() {
	summaryFrom = ""
	summaryTo = ""
	summaryFields = ""
	summaryOut = ""
	summaryChart = ""
	summaryRows = ""
}

func TestSummaryCommandFullRange(t *testing.T) {
	resetSummaryFlags()
	path := filepath.Join(t.TempDir(), "data.csv")
	src := "datetime,Suction Pressure,Discharge Pressure,Motor Current\n" +
		"2024-03-14 00:00:00,3.1,11.2,41.0\n" +
		"2024-03-14 01:00:00,3.3,11.8,42.5\n" +
		"2024-03-14 02:00:00,3.2,11.5,42.0\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	var buf bytes.Buffer
	summaryCmd.SetOut(&buf)
	require.NoError(t, runSummary(summaryCmd, []string{path}))

	out := buf.String()
	assert.Contains(t, out, "(3 rows)")
	assert.Contains(t, out, "Suction Pressure")
	assert.Contains(t, out, "Discharge Pressure")
	assert.NotContains(t, out, "Motor Current")
	assert.Contains(t, out, "3.10")
	assert.Contains(t, out, "3.30")
}

func TestSummaryCommandWindowAndOutputs(t *testing.T) {
	resetSummaryFlags()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	src := "datetime,Suction Pressure,Motor Current\n" +
		"2024-03-14 00:00:00,3.1,41.0\n" +
		"2024-03-14 01:00:00,3.3,42.5\n" +
		"2024-03-14 02:00:00,3.2,42.0\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	summaryFrom = "2024-03-14 01:00"
	summaryTo = "2024-03-14 02:00"
	summaryFields = "Motor Current"
	summaryOut = filepath.Join(dir, "summary.xlsx")
	summaryRows = filepath.Join(dir, "rows.csv")

	var buf bytes.Buffer
	summaryCmd.SetOut(&buf)
	require.NoError(t, runSummary(summaryCmd, []string{path}))

	assert.Contains(t, buf.String(), "(2 rows)")
	assert.FileExists(t, summaryOut)
	assert.FileExists(t, summaryRows)

	rows, err := os.ReadFile(summaryRows)
	require.NoError(t, err)
	assert.Equal(t, "datetime,Motor Current\n2024-03-14 01:00:00,42.50\n2024-03-14 02:00:00,42.00\n", string(rows))
}

func TestSummaryCommandBadWindow(t *testing.T) {
	resetSummaryFlags()
	path := filepath.Join(t.TempDir(), "data.csv")
	src := "datetime,Load\n2024-03-14 00:00:00,1\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	summaryFrom = "yesterday"
	err := runSummary(summaryCmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--from")
}

func TestSummaryCommandBundledDataset(t *testing.T) {
	resetSummaryFlags()
	var buf bytes.Buffer
	summaryCmd.SetOut(&buf)
	require.NoError(t, runSummary(summaryCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "(48 rows)")
	assert.Contains(t, out, "Suction Pressure")
}
