package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-plot/clipboard"
)

const summaryColWidth = 12

// summaryDrawerView renders the Min/Avg/Max table for the displayed result.
func (m *model) summaryDrawerView(width int) string {
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	disp := m.data.displayed
	if disp == nil {
		return summaryArea.Width(width).Render(lineStyle.Render("No result yet — press r to refresh"))
	}

	nameWidth := len("Field")
	for _, st := range disp.Summary {
		if len(st.Field) > nameWidth {
			nameWidth = len(st.Field)
		}
	}

	var lines []string
	header := fmt.Sprintf("%-*s %*s %*s %*s",
		nameWidth, "Field",
		summaryColWidth, "Min",
		summaryColWidth, "Avg",
		summaryColWidth, "Max")
	lines = append(lines, lineStyle.Render(summaryHeaderStyle.Render(header)))

	for _, st := range disp.Summary {
		line := fmt.Sprintf("%-*s %*s %*s %*s",
			nameWidth, st.Field,
			summaryColWidth, formatValue(st.Min),
			summaryColWidth, formatValue(st.Mean),
			summaryColWidth, formatValue(st.Max))
		lines = append(lines, lineStyle.Render(line))
	}

	return summaryArea.Width(width).Render(strings.Join(lines, "\n"))
}

// summaryTSV is the clipboard form of the summary table.
func summaryTSV(disp *displayedResult) string {
	var b strings.Builder
	b.WriteString("Field\tMin\tAvg\tMax\n")
	for _, st := range disp.Summary {
		b.WriteString(st.Field)
		b.WriteByte('\t')
		b.WriteString(formatValue(st.Min))
		b.WriteByte('\t')
		b.WriteString(formatValue(st.Mean))
		b.WriteByte('\t')
		b.WriteString(formatValue(st.Max))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *model) copySummary() tea.Cmd {
	if m.data.displayed == nil {
		return m.startNotice("No result to copy yet", "warn", noticeDuration)
	}
	if err := clipboard.Copy(summaryTSV(m.data.displayed)); err != nil {
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice("Summary copied", "success", noticeDuration)
}
