package main

import tea "github.com/charmbracelet/bubbletea"

// jumpToRow moves the cursor to the 1-based row n of the displayed result.
func (m *model) jumpToRow(n int) tea.Cmd {
	if m.data.displayed == nil {
		return nil
	}
	total := m.data.displayed.Filtered.Len()
	if n < 1 || n > total {
		return m.startNotice("Row out of range", "warn", noticeDuration)
	}
	m.cursor = n - 1
	return nil
}
