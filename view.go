package main

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-plot/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func (m *model) headerView() string {
	if m.data.displayed == nil {
		return headerStyle.Render("")
	}

	gutterWidth := len(fmt.Sprintf("%d", m.data.displayed.Filtered.Len())) + 1

	var cells []string
	for _, col := range m.header {
		if !col.Visible || col.Width <= 0 {
			continue
		}
		cells = append(cells, cellStyle.Width(col.Width).Render(col.Name))
	}

	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return headerStyle.Render(strings.Repeat(" ", gutterWidth) + headerRow)
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := tableStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	parts := []string{m.headerView(), bordered}
	if m.ui.timeWindow.open {
		parts = append(parts, m.timeWindowDrawerView(contentW))
	}
	if m.ui.fields.open {
		parts = append(parts, m.fieldsDrawerView(contentW))
	}
	if m.ui.showSummary {
		parts = append(parts, m.summaryDrawerView(contentW))
	}
	parts = append(parts, m.footerView(contentW)) // always
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) renderTable() string {
	disp := m.data.displayed
	if disp == nil || disp.Filtered.Len() == 0 {
		logging.Debugf("renderTable: nothing displayed yet")
		return ""
	}
	if m.cursor >= disp.Filtered.Len() {
		m.cursor = 0
	}

	var b strings.Builder
	for i := range disp.Filtered.Rows {
		rendered, ok := m.renderRowAt(i)
		if !ok {
			continue
		}
		b.WriteString(rendered + "\n")
	}
	return b.String()
}

func (m *model) renderRowAt(idx int) (string, bool) {
	disp := m.data.displayed
	if disp == nil || idx < 0 || idx >= disp.Filtered.Len() {
		return "", false
	}

	selected := idx == m.cursor
	rowBgStyle := rowStyle
	rowPrefix := bgSeq(lipgloss.Color("")) + fgSeq(lipgloss.Color(rowTextFGColor))
	if selected {
		rowBgStyle = rowSelectedStyle
		rowPrefix = bgSeq(lipgloss.Color(rowSelectedBGColor)) + fgSeq(lipgloss.Color(rowSelectedTextFGColor))
	}
	rowSuffix := termenv.CSI + "0m"

	row := disp.Filtered.Rows[idx]
	cells := m.rowCells(row)

	if m.ui.searchQuery != "" {
		for i := range cells {
			cells[i] = highlightMatches(cells[i], m.ui.searchQuery)
		}
	}

	gutterWidth := len(fmt.Sprintf("%d", disp.Filtered.Len()))
	gutter := rowBgStyle.Render(fmt.Sprintf("%*d ", gutterWidth, idx+1))

	line := renderCells(cellStyle, cells, m.header)
	if m.ui.searchQuery != "" {
		line = restoreRowStyleAfterReset(line, rowPrefix)
	}

	return gutter + rowPrefix + line + rowSuffix, true
}

func highlightMatches(text string, query string) string {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(q)
	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx == -1 {
			b.WriteString(text[start:])
			break
		}
		idx += start
		b.WriteString(text[start:idx])
		match := text[idx : idx+len(lowerQuery)]
		b.WriteString(searchHighlight.Render(match))
		start = idx + len(lowerQuery)
	}
	return b.String()
}

func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	reset := termenv.CSI + "0m"
	if !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}
