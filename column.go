package main

type ColumnRole int

const (
	RoleTime ColumnRole = iota
	RoleField
)

type ColumnMeta struct {
	Name     string
	Index    int // schema index for field columns, -1 for the time column
	Role     ColumnRole
	Visible  bool
	MinWidth int
	Weight   float64
	Width    int
}

func defaultMinWidthForRole(r ColumnRole) int {
	if r == RoleTime {
		return len(timeInputLayout) + 2
	}
	return 10
}

func defaultWeightForRole(r ColumnRole) float64 {
	if r == RoleTime {
		return 0.5
	}
	return 1.0
}

// rebuildHeader derives the column layout from the displayed result: the time
// column first, then one column per displayed field.
func (m *model) rebuildHeader() {
	disp := m.data.displayed
	if disp == nil {
		m.header = nil
		return
	}

	cols := make([]ColumnMeta, 0, len(disp.Fields)+1)
	cols = append(cols, ColumnMeta{
		Name:     "Time",
		Index:    -1,
		Role:     RoleTime,
		Visible:  true,
		MinWidth: defaultMinWidthForRole(RoleTime),
		Weight:   defaultWeightForRole(RoleTime),
	})
	for _, f := range disp.Fields {
		cols = append(cols, ColumnMeta{
			Name:     f,
			Index:    disp.Filtered.FieldIndex(f),
			Role:     RoleField,
			Visible:  true,
			MinWidth: defaultMinWidthForRole(RoleField),
			Weight:   defaultWeightForRole(RoleField),
		})
	}

	m.header = layoutColumns(cols, m.viewport.Width-2)
}

func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	// 1. Sum min widths & weights for visible columns
	minSum := 0
	weightSum := 0.0

	for i := range cols {
		if !cols[i].Visible {
			continue
		}
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		// Too tight: just give each visible column its MinWidth clamped
		for i := range cols {
			if !cols[i].Visible {
				continue
			}
			if cols[i].MinWidth > totalWidth {
				cols[i].Width = totalWidth // all we can do
			} else {
				cols[i].Width = cols[i].MinWidth
			}
		}
		return cols
	}

	remaining := totalWidth - minSum

	// 2. Distribute remaining space by weight
	for i := range cols {
		if !cols[i].Visible {
			cols[i].Width = 0
			continue
		}

		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
	}

	return cols
}
