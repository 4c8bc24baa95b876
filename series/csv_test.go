package series

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	t.Run("datetime column", func(t *testing.T) {
		in := "datetime,Suction Temp,Discharge Temp\n" +
			"2024-01-01 00:00:00,-8.5,62.1\n" +
			"2024-01-01 00:10:00,-8.2,63.0\n"

		tbl, err := ReadTable(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []string{"Suction Temp", "Discharge Temp"}, tbl.Fields)
		require.Equal(t, 2, tbl.Len())
		assert.Equal(t, []float64{-8.5, 62.1}, tbl.Rows[0].Values)
	})

	t.Run("date and time columns combined day first", func(t *testing.T) {
		in := "Date,time,Load\n" +
			"02/01/2024,06:30:00,41.5\n"

		tbl, err := ReadTable(strings.NewReader(in))
		require.NoError(t, err)
		require.Equal(t, 1, tbl.Len())

		want := time.Date(2024, time.January, 2, 6, 30, 0, 0, time.Local)
		assert.Equal(t, want, tbl.Rows[0].Timestamp)
		assert.Equal(t, []string{"Load"}, tbl.Fields)
	})

	t.Run("BOM on header", func(t *testing.T) {
		in := "\uFEFFdatetime,X\n2024-01-01 00:00:00,1\n"
		tbl, err := ReadTable(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []string{"X"}, tbl.Fields)
	})

	t.Run("missing timestamp columns", func(t *testing.T) {
		in := "Date,Load\n02/01/2024,41.5\n"
		_, err := ReadTable(strings.NewReader(in))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedSource)
	})

	t.Run("unparseable timestamp is a load error", func(t *testing.T) {
		in := "datetime,X\nnot-a-time,1\n"
		_, err := ReadTable(strings.NewReader(in))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedSource)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("non numeric value is a load error", func(t *testing.T) {
		in := "datetime,X\n2024-01-01 00:00:00,n/a\n"
		_, err := ReadTable(strings.NewReader(in))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedSource)
		assert.Contains(t, err.Error(), `"X"`)
	})

	t.Run("no numeric columns", func(t *testing.T) {
		in := "datetime\n2024-01-01 00:00:00\n"
		_, err := ReadTable(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrMalformedSource)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ReadTable(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrMalformedSource)
	})

	t.Run("header only", func(t *testing.T) {
		tbl, err := ReadTable(strings.NewReader("datetime,X\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, tbl.Len())
	})
}

func TestTimeBounds(t *testing.T) {
	tbl := testTable(t)
	min, max, ok := tbl.TimeBounds()
	require.True(t, ok)
	assert.Equal(t, ts("2024-01-01 00:00"), min)
	assert.Equal(t, ts("2024-01-02 00:00"), max)

	empty := &Table{Fields: []string{"X"}}
	_, _, ok = empty.TimeBounds()
	assert.False(t, ok)
}

func TestNewTableSchemaMismatch(t *testing.T) {
	_, err := NewTable([]string{"A", "B"}, []Row{
		{Timestamp: ts("2024-01-01 00:00"), Values: []float64{1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedSource)
}
