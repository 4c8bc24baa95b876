package main

import (
	"strconv"

	"github.com/andareed/siftly-plot/series"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// formatValue renders a sample the way the summary table does, two decimals.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// rowCells formats one displayed row into the header's column order: the
// timestamp first, then the value of each displayed field.
func (m *model) rowCells(row series.Row) []string {
	cells := make([]string, 0, len(m.header))
	for _, col := range m.header {
		if col.Role == RoleTime {
			cells = append(cells, row.Timestamp.Format(timeInputLayout))
			continue
		}
		cells = append(cells, formatValue(row.Values[col.Index]))
	}
	return cells
}

// renderCells lays the cells out against the column metadata, truncating
// anything that overflows its column.
func renderCells(style lipgloss.Style, cells []string, cols []ColumnMeta) string {
	var rendered []string
	for i, text := range cells {
		if i >= len(cols) {
			break
		}
		meta := cols[i]
		if !meta.Visible || meta.Width <= 0 {
			continue
		}
		text = runewidth.Truncate(text, max(1, meta.Width-2), "…")
		rendered = append(rendered, style.Width(meta.Width).Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
