package series

import "fmt"

// SummaryStat is the (min, mean, max) triple for one field over a filtered
// table.
type SummaryStat struct {
	Field string
	Min   float64
	Mean  float64
	Max   float64
}

// Summarize computes one SummaryStat per selected field, in selection order.
// Every field must exist in the schema and the selection must not be empty.
// Callers only invoke this on a non-empty filtered table; Filter already
// reports the empty case.
func (t *Table) Summarize(fields []string) ([]SummaryStat, error) {
	if len(fields) == 0 {
		return nil, ErrEmptySelection
	}
	if len(t.Rows) == 0 {
		return nil, ErrNoDataInRange
	}

	stats := make([]SummaryStat, 0, len(fields))
	for _, name := range fields {
		idx := t.FieldIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("unknown field %q", name)
		}

		min := t.Rows[0].Values[idx]
		max := min
		sum := 0.0
		for _, r := range t.Rows {
			v := r.Values[idx]
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			sum += v
		}

		stats = append(stats, SummaryStat{
			Field: name,
			Min:   min,
			Mean:  sum / float64(len(t.Rows)),
			Max:   max,
		})
	}
	return stats, nil
}
