package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

// Three rows, one field, matching the datasets these tests revolve around.
func testTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable([]string{"X"}, []Row{
		{Timestamp: ts("2024-01-01 00:00"), Values: []float64{1.0}},
		{Timestamp: ts("2024-01-01 12:00"), Values: []float64{2.0}},
		{Timestamp: ts("2024-01-02 00:00"), Values: []float64{3.0}},
	})
	require.NoError(t, err)
	return tbl
}

func TestNewTimeRange(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := NewTimeRange(ts("2024-01-01 00:00"), ts("2024-01-02 00:00"))
		require.NoError(t, err)
		assert.Equal(t, ts("2024-01-01 00:00"), r.Start)
		assert.Equal(t, ts("2024-01-02 00:00"), r.End)
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := NewTimeRange(ts("2024-01-01 00:00"), ts("2024-01-01 00:00"))
		assert.NoError(t, err)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := NewTimeRange(ts("2024-01-03 00:00"), ts("2024-01-01 00:00"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestFilter(t *testing.T) {
	tbl := testTable(t)

	t.Run("inclusive on both boundaries", func(t *testing.T) {
		r, err := NewTimeRange(ts("2024-01-01 00:00"), ts("2024-01-01 12:00"))
		require.NoError(t, err)

		got, err := tbl.Filter(r)
		require.NoError(t, err)
		require.Equal(t, 2, got.Len())
		assert.Equal(t, ts("2024-01-01 00:00"), got.Rows[0].Timestamp)
		assert.Equal(t, ts("2024-01-01 12:00"), got.Rows[1].Timestamp)
	})

	t.Run("single instant window", func(t *testing.T) {
		r, err := NewTimeRange(ts("2024-01-02 00:00"), ts("2024-01-02 00:00"))
		require.NoError(t, err)

		got, err := tbl.Filter(r)
		require.NoError(t, err)
		require.Equal(t, 1, got.Len())
		assert.Equal(t, []float64{3.0}, got.Rows[0].Values)
	})

	t.Run("window before all data", func(t *testing.T) {
		r, err := NewTimeRange(ts("2023-01-01 00:00"), ts("2023-01-02 00:00"))
		require.NoError(t, err)

		_, err = tbl.Filter(r)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoDataInRange)
	})

	t.Run("preserves input order for unsorted rows", func(t *testing.T) {
		unsorted, err := NewTable([]string{"X"}, []Row{
			{Timestamp: ts("2024-01-02 00:00"), Values: []float64{3.0}},
			{Timestamp: ts("2024-01-01 00:00"), Values: []float64{1.0}},
			{Timestamp: ts("2024-01-01 12:00"), Values: []float64{2.0}},
		})
		require.NoError(t, err)

		r, err := NewTimeRange(ts("2024-01-01 00:00"), ts("2024-01-02 00:00"))
		require.NoError(t, err)

		got, err := unsorted.Filter(r)
		require.NoError(t, err)
		require.Equal(t, 3, got.Len())
		assert.Equal(t, 3.0, got.Rows[0].Values[0])
		assert.Equal(t, 1.0, got.Rows[1].Values[0])
		assert.Equal(t, 2.0, got.Rows[2].Values[0])
	})

	t.Run("does not mutate the source table", func(t *testing.T) {
		r, err := NewTimeRange(ts("2024-01-01 00:00"), ts("2024-01-01 12:00"))
		require.NoError(t, err)

		_, err = tbl.Filter(r)
		require.NoError(t, err)
		assert.Equal(t, 3, tbl.Len())
	})
}

func TestFilterSummarizeDeterministic(t *testing.T) {
	tbl := testTable(t)
	r, err := NewTimeRange(ts("2024-01-01 00:00"), ts("2024-01-01 12:00"))
	require.NoError(t, err)

	first, err := tbl.Filter(r)
	require.NoError(t, err)
	firstStats, err := first.Summarize([]string{"X"})
	require.NoError(t, err)

	second, err := tbl.Filter(r)
	require.NoError(t, err)
	secondStats, err := second.Summarize([]string{"X"})
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, firstStats, secondStats)
}

func TestContains(t *testing.T) {
	r, err := NewTimeRange(ts("2024-01-01 00:00"), ts("2024-01-02 00:00"))
	require.NoError(t, err)

	assert.True(t, r.Contains(ts("2024-01-01 00:00")))
	assert.True(t, r.Contains(ts("2024-01-02 00:00")))
	assert.True(t, r.Contains(ts("2024-01-01 06:30")))
	assert.False(t, r.Contains(ts("2023-12-31 23:59")))
	assert.False(t, r.Contains(ts("2024-01-02 00:01")))
}
