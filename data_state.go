package main

import (
	"time"

	"github.com/andareed/siftly-plot/series"
)

// displayedResult is the outcome of the last successful refresh cycle. It is
// the only state a cycle is allowed to overwrite, and only on success; a
// halted cycle leaves the previous result on screen.
type displayedResult struct {
	Window   series.TimeRange
	Fields   []string
	Filtered *series.Table
	Summary  []series.SummaryStat
}

type dataState struct {
	table      *series.Table // full dataset, read-only after load
	sourcePath string        // empty when the bundled dataset is loaded

	timeMin       time.Time
	timeMax       time.Time
	hasTimeBounds bool

	selected  []bool // one flag per schema field
	window    series.TimeRange
	windowSet bool

	displayed *displayedResult // nil until the first cycle completes
}

// selectedFields returns the chosen field names in schema order.
func (d *dataState) selectedFields() []string {
	var fields []string
	for i, on := range d.selected {
		if on {
			fields = append(fields, d.table.Fields[i])
		}
	}
	return fields
}

func (d *dataState) selectedCount() int {
	n := 0
	for _, on := range d.selected {
		if on {
			n++
		}
	}
	return n
}
