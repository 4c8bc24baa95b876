package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Column names the loader consumes to build the combined timestamp. They are
// excluded from the numeric schema, matching the shape of the source files
// this tool is fed (either a single "datetime" column, or "Date" + "time").
const (
	datetimeColumn = "datetime"
	dateColumn     = "date"
	timeColumn     = "time"
)

// Day-first first: the bundled dataset and the field loggers that produce
// these files write 31/12/2024 style dates.
var datetimeLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02-01-2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
}

// ReadTable parses a CSV stream into a Table. The header row names the
// columns; every column that is not part of the timestamp becomes a numeric
// field. Rows with unparseable timestamps or non-numeric values are a load
// error, not silently dropped.
func ReadTable(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrMalformedSource)
	}

	header := records[0]
	dtIdx, dateIdx, timeIdx := -1, -1, -1
	var fields []string
	var fieldIdx []int

	for i, raw := range header {
		name := strings.TrimPrefix(strings.TrimSpace(raw), "\uFEFF")
		switch strings.ToLower(name) {
		case datetimeColumn:
			dtIdx = i
		case dateColumn:
			dateIdx = i
		case timeColumn:
			timeIdx = i
		default:
			fields = append(fields, name)
			fieldIdx = append(fieldIdx, i)
		}
	}

	if dtIdx < 0 && (dateIdx < 0 || timeIdx < 0) {
		return nil, fmt.Errorf("%w: need a %q column or both %q and %q columns",
			ErrMalformedSource, "datetime", "Date", "time")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no numeric columns beside the timestamp", ErrMalformedSource)
	}

	rows := make([]Row, 0, len(records)-1)
	for n, rec := range records[1:] {
		line := n + 2 // 1-based, counting the header

		var raw string
		if dtIdx >= 0 {
			if dtIdx >= len(rec) {
				return nil, fmt.Errorf("%w: line %d: missing datetime column", ErrMalformedSource, line)
			}
			raw = rec[dtIdx]
		} else {
			if dateIdx >= len(rec) || timeIdx >= len(rec) {
				return nil, fmt.Errorf("%w: line %d: missing date/time columns", ErrMalformedSource, line)
			}
			raw = strings.TrimSpace(rec[dateIdx]) + " " + strings.TrimSpace(rec[timeIdx])
		}

		ts, ok := parseTimestamp(raw)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: unparseable timestamp %q", ErrMalformedSource, line, raw)
		}

		values := make([]float64, len(fields))
		for j, col := range fieldIdx {
			if col >= len(rec) {
				return nil, fmt.Errorf("%w: line %d: missing column %q", ErrMalformedSource, line, fields[j])
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: column %q: %q is not numeric",
					ErrMalformedSource, line, fields[j], rec[col])
			}
			values[j] = v
		}

		rows = append(rows, Row{Timestamp: ts, Values: values})
	}

	return &Table{Fields: fields, Rows: rows}, nil
}

func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range datetimeLayouts {
		if ts, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
