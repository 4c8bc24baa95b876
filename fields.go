package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fieldsUI is the drawer state for the field multiselect. The draft only
// reaches dataState on apply, and an empty draft never leaves the drawer.
type fieldsUI struct {
	open     bool
	cursor   int
	draft    []bool
	errorMsg string
}

func (m *model) openFieldsDrawer() {
	fu := &m.ui.fields
	fu.open = true
	fu.cursor = 0
	fu.errorMsg = ""
	fu.draft = make([]bool, len(m.data.selected))
	copy(fu.draft, m.data.selected)
	m.ui.mode = modeFields
}

func (m *model) closeFieldsDrawer() {
	m.ui.fields.open = false
	m.ui.fields.errorMsg = ""
	m.ui.mode = modeView
	m.refreshView()
}

func (m *model) handleFieldsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fu := &m.ui.fields

	switch msg.String() {
	case "esc":
		m.closeFieldsDrawer()
	case "enter":
		return m, m.applyFieldSelection()
	case "down", "j":
		if fu.cursor < len(fu.draft)-1 {
			fu.cursor++
		}
	case "up", "k":
		if fu.cursor > 0 {
			fu.cursor--
		}
	case " ":
		if fu.cursor >= 0 && fu.cursor < len(fu.draft) {
			fu.draft[fu.cursor] = !fu.draft[fu.cursor]
			fu.errorMsg = ""
		}
	case "a":
		for i := range fu.draft {
			fu.draft[i] = true
		}
		fu.errorMsg = ""
	case "n":
		for i := range fu.draft {
			fu.draft[i] = false
		}
	}
	return m, nil
}

// applyFieldSelection commits the draft and runs a refresh cycle. An empty
// selection is rejected here, before the core is ever invoked.
func (m *model) applyFieldSelection() tea.Cmd {
	fu := &m.ui.fields

	any := false
	for _, on := range fu.draft {
		if on {
			any = true
			break
		}
	}
	if !any {
		fu.errorMsg = "Select at least one field"
		return nil
	}

	copy(m.data.selected, fu.draft)
	cmd := m.runRefresh()
	m.closeFieldsDrawer()
	return cmd
}

func (m *model) fieldsDrawerView(width int) string {
	fu := &m.ui.fields
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	var lines []string
	for i, name := range m.data.table.Fields {
		marker := "[ ]"
		if fu.draft[i] {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s", marker, name)
		if i == fu.cursor {
			line = fieldCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, lineStyle.Render(line))
	}

	help := "space: toggle  a: all  n: none  enter: apply  esc: cancel"
	lines = append(lines, lineStyle.Render(help))
	if fu.errorMsg != "" {
		lines = append(lines, lineStyle.Render("Error: "+fu.errorMsg))
	}

	content := strings.Join(lines, "\n")
	return fieldsArea.Width(width).Render(content)
}

func (m *model) fieldsStatusLabel() string {
	return fmt.Sprintf("Fields: %d/%d", m.data.selectedCount(), len(m.data.table.Fields))
}
