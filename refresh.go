package main

import (
	"errors"
	"fmt"

	"github.com/andareed/siftly-plot/logging"
	"github.com/andareed/siftly-plot/series"
	tea "github.com/charmbracelet/bubbletea"
)

// defaultSelection picks the first two numeric fields, matching what the
// dashboard shows before the user has chosen anything.
func defaultSelection(table *series.Table) []bool {
	selected := make([]bool, len(table.Fields))
	for i := range selected {
		if i < 2 {
			selected[i] = true
		}
	}
	return selected
}

// runRefresh executes one full cycle: validate the window, filter the table,
// summarize the selected fields, then publish the result. Any error halts the
// cycle and leaves the previously displayed result untouched.
func (m *model) runRefresh() tea.Cmd {
	if !m.data.hasTimeBounds {
		return m.startNotice("Dataset has no rows to display", "warn", noticeDuration)
	}

	fields := m.data.selectedFields()
	if len(fields) == 0 {
		logging.Warnf("refresh: halted, empty field selection")
		return m.startNotice("Select at least one field", "warn", noticeDuration)
	}

	window, err := series.NewTimeRange(m.data.window.Start, m.data.window.End)
	if err != nil {
		logging.Warnf("refresh: halted, %v", err)
		return m.startNotice("Start is after end", "error", noticeDuration)
	}

	filtered, err := m.data.table.Filter(window)
	if err != nil {
		if errors.Is(err, series.ErrNoDataInRange) {
			logging.Infof("refresh: no rows in %s - %s", window.Start, window.End)
			return m.startNotice("No data in the selected range", "warn", noticeDuration)
		}
		return m.startNotice(err.Error(), "error", noticeDuration)
	}

	summary, err := filtered.Summarize(fields)
	if err != nil {
		logging.Warnf("refresh: summarize failed: %v", err)
		return m.startNotice(err.Error(), "error", noticeDuration)
	}

	m.data.displayed = &displayedResult{
		Window:   window,
		Fields:   fields,
		Filtered: filtered,
		Summary:  summary,
	}
	m.cursor = 0
	m.refreshView()

	logging.Infof("refresh: %d rows, %d fields displayed", filtered.Len(), len(fields))
	return m.startNotice(fmt.Sprintf("%d rows in window", filtered.Len()), "info", noticeDuration)
}
