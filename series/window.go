package series

import (
	"fmt"
	"time"
)

// TimeRange is an inclusive [Start, End] window. Values are only constructed
// through NewTimeRange, so Start <= End always holds.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange validates the requested window. A start later than the end is
// rejected before any filtering happens.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if start.After(end) {
		return TimeRange{}, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidRange,
			start.Format(time.DateTime),
			end.Format(time.DateTime))
	}
	return TimeRange{Start: start, End: end}, nil
}

// Contains reports whether t falls inside the window, boundaries included.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Filter returns a new table holding exactly the rows whose timestamp falls
// inside the window, in input order. An empty result is reported as
// ErrNoDataInRange so the caller can stop before rendering or summarizing.
func (t *Table) Filter(r TimeRange) (*Table, error) {
	kept := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if r.Contains(row.Timestamp) {
			kept = append(kept, row)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: %s - %s",
			ErrNoDataInRange,
			r.Start.Format(time.DateTime),
			r.End.Format(time.DateTime))
	}
	return &Table{Fields: t.Fields, Rows: kept}, nil
}
