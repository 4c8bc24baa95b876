// Package series holds the loaded dataset and the time-window filtering and
// summary operations that sit between the data source and the UI.
package series

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the conditions that end a refresh cycle. Callers match
// with errors.Is and surface the wrapped detail to the user.
var (
	ErrMalformedSource = errors.New("malformed source")
	ErrInvalidRange    = errors.New("invalid time range")
	ErrEmptySelection  = errors.New("no fields selected")
	ErrNoDataInRange   = errors.New("no data in selected range")
)

// Row is a single observation: a combined date+time stamp plus one value per
// schema field, aligned with Table.Fields.
type Row struct {
	Timestamp time.Time
	Values    []float64
}

// Table is an ordered sequence of rows sharing one schema. Rows keep their
// input order; timestamps are not required to be sorted. A Table is never
// mutated after construction.
type Table struct {
	Fields []string
	Rows   []Row
}

// NewTable validates that every row carries one value per field.
func NewTable(fields []string, rows []Row) (*Table, error) {
	for i, r := range rows {
		if len(r.Values) != len(fields) {
			return nil, fmt.Errorf("%w: row %d has %d values, schema has %d fields",
				ErrMalformedSource, i+1, len(r.Values), len(fields))
		}
	}
	return &Table{Fields: fields, Rows: rows}, nil
}

// FieldIndex returns the schema position of name, or -1.
func (t *Table) FieldIndex(name string) int {
	for i, f := range t.Fields {
		if f == name {
			return i
		}
	}
	return -1
}

// Len returns the row count.
func (t *Table) Len() int { return len(t.Rows) }

// TimeBounds returns the earliest and latest timestamp in the table.
// ok is false for an empty table.
func (t *Table) TimeBounds() (min, max time.Time, ok bool) {
	if len(t.Rows) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min = t.Rows[0].Timestamp
	max = t.Rows[0].Timestamp
	for _, r := range t.Rows[1:] {
		if r.Timestamp.Before(min) {
			min = r.Timestamp
		}
		if r.Timestamp.After(max) {
			max = r.Timestamp
		}
	}
	return min, max, true
}
