package main

import "strings"

// searchOnce moves the cursor to the first displayed row whose rendered cells
// contain the query, case-insensitively.
func (m *model) searchOnce(query string) {
	if query == "" || m.data.displayed == nil {
		return
	}

	needle := strings.ToLower(query)
	for i, row := range m.data.displayed.Filtered.Rows {
		cells := m.rowCells(row)
		if strings.Contains(strings.ToLower(strings.Join(cells, "\t")), needle) {
			m.cursor = i
			m.viewport.SetYOffset(i)
			return
		}
	}
}
