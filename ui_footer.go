package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/andareed/siftly-plot/logging"
)

type footerState struct {
	Mode      Command
	ModeInput string

	FileName    string
	WindowLabel string
	FieldsLabel string

	Row       int
	TotalRows int

	StatusMessage string
	Legend        string
}

type footerStyles struct {
	BarBG      lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func defaultFooterStyles() footerStyles {
	return footerStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func (m *model) footerView(width int) string {
	logging.Debugf("footerView mode=%d cmd=%d", m.ui.mode, m.ui.command.cmd)
	styles := defaultFooterStyles()

	footerMode := CmdNone
	modeInput := ""
	if m.ui.mode == modeCommand {
		footerMode = m.ui.command.cmd
		modeInput = m.activeCommandLine()
	}

	totalRows := 0
	if m.data.displayed != nil {
		totalRows = m.data.displayed.Filtered.Len()
	}

	st := footerState{
		Mode:        footerMode,
		ModeInput:   modeInput,
		FileName:    m.sourceLabel(),
		WindowLabel: m.timeWindowStatusLabel(),
		FieldsLabel: m.fieldsStatusLabel(),
		Row:         m.cursor + 1,
		TotalRows:   totalRows,
		Legend:      "(? help · t window · f fields · r refresh · s summary · e export · w save · / search)",
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}
	if st.StatusMessage == "" {
		st.StatusMessage = st.WindowLabel
	}

	return renderFooter(width, st, styles)
}

func (m *model) sourceLabel() string {
	if m.data.sourcePath == "" {
		return "bundled dataset"
	}
	return filepath.Base(m.data.sourcePath)
}

func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Legend == "" {
		st.Legend = "(? help · f fields · t window)"
	}
	if st.Row < 0 {
		st.Row = 0
	}
	if st.TotalRows < 0 {
		st.TotalRows = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	rightPlain := fmt.Sprintf(" Rows %d/%d", st.Row, st.TotalRows)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)

	var left string
	if st.Mode != CmdNone {
		left = st.ModeInput
	} else {
		pill := lipgloss.NewStyle().
			Background(styles.ModePillBG).
			Foreground(styles.ModePillFG).
			Padding(0, 1).
			Render(st.FileName)
		info := lipgloss.NewStyle().
			Foreground(styles.TextFG).
			Render(" " + st.WindowLabel + " · " + st.FieldsLabel)
		left = pill + info
	}

	leftW := width - rightW
	if leftW < 0 {
		leftW = 0
	}
	left = lipgloss.NewStyle().Width(leftW).MaxWidth(leftW).Render(left)

	bar := lipgloss.NewStyle().Background(styles.BarBG).Width(width)
	right := lipgloss.NewStyle().Foreground(styles.FileNameFG).Render(rightPlain)
	return bar.Render(left + right)
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	status := lipgloss.NewStyle().Foreground(styles.StatusFG).Render(st.StatusMessage)
	legend := lipgloss.NewStyle().Foreground(styles.LegendFG).Render(st.Legend)

	statusW := runeWidth(st.StatusMessage)
	legendW := runeWidth(st.Legend)
	gap := width - statusW - legendW
	if gap < 1 {
		// status wins; legend is dropped when the terminal is too narrow
		return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(status)
	}
	return status + strings.Repeat(" ", gap) + legend
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}

func truncatePlain(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}
