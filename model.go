package main

import (
	"github.com/andareed/siftly-plot/dialogs"
	"github.com/andareed/siftly-plot/logging"
	"github.com/andareed/siftly-plot/series"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

type mode int

const (
	modeView mode = iota
	modeTimeWindow
	modeFields
	modeCommand
)

type model struct {
	data dataState
	ui   uiState

	viewport       viewport.Model
	ready          bool
	cursor         int // index into the displayed (filtered) rows
	pageRowSize    int
	terminalWidth  int
	terminalHeight int

	header []ColumnMeta // Time column + one column per displayed field

	activeDialog dialogs.Dialog

	InitialPath string
	watcher     *fsnotify.Watcher
}

// newModel wires a loaded table into a fresh model with the default window
// (full bounds) and the default field selection (first two numeric fields).
func newModel(table *series.Table, sourcePath string) *model {
	m := &model{
		data: dataState{
			table:      table,
			sourcePath: sourcePath,
			selected:   defaultSelection(table),
		},
	}
	m.data.timeMin, m.data.timeMax, m.data.hasTimeBounds = table.TimeBounds()
	if m.data.hasTimeBounds {
		m.data.window = series.TimeRange{Start: m.data.timeMin, End: m.data.timeMax}
		m.data.windowSet = true
	}
	m.ui.timeWindow.startInput = initTimeWindowInput()
	m.ui.timeWindow.endInput = initTimeWindowInput()
	m.ui.timeWindow.step = timeWindowStepDefault
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-plot: initialised (%d rows, %d fields)", m.data.table.Len(), len(m.data.table.Fields))
	cmd := m.runRefresh()
	if m.watcher != nil {
		return tea.Batch(cmd, waitForChange(m.watcher))
	}
	return cmd
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.viewport = viewport.New(msg.Width-6, msg.Height-7)
		m.pageRowSize = max(1, m.viewport.Height-1)
		m.ready = true
		m.refreshView()
		return m, nil

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}
		return m, nil

	case fileChangedMsg:
		cmd := m.handleFileChanged(msg)
		return m, cmd

	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		m.ui.mode = modeView
		if err := m.exportArtifact(msg.Path); err != nil {
			logging.Warnf("export failed: %v", err)
			return m, m.startNotice("Export failed: "+err.Error(), "error", noticeDuration)
		}
		return m, m.startNotice("Exported "+msg.Path, "success", noticeDuration)

	case dialogs.ExportCanceledMsg, dialogs.SaveCanceledMsg:
		m.activeDialog = nil
		m.ui.mode = modeView
		return m, nil

	case dialogs.SaveConfirmedMsg:
		m.activeDialog = nil
		m.ui.mode = modeView
		if err := saveSession(m, msg.Path); err != nil {
			logging.Warnf("session save failed: %v", err)
			return m, m.startNotice("Save failed: "+err.Error(), "error", noticeDuration)
		}
		return m, m.startNotice("Session saved to "+msg.Path, "success", noticeDuration)
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}

	switch m.ui.mode {
	case modeView:
		return m.handleViewModeKey(msg)
	case modeTimeWindow:
		return m.handleTimeWindowKey(msg)
	case modeFields:
		return m.handleFieldsKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	}

	return m, nil
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "t":
		m.openTimeWindowDrawer()
	case "f":
		m.openFieldsDrawer()
	case "r":
		return m, m.runRefresh()
	case "s":
		m.ui.showSummary = !m.ui.showSummary
	case "e":
		m.activeDialog = dialogs.NewExportDialog(defaultExportName(m), "")
		return m, m.activeDialog.Focus()
	case "w":
		m.activeDialog = dialogs.NewSaveDialog(defaultSessionName(m), "")
		return m, m.activeDialog.Focus()
	case "y":
		return m, m.copySummary()
	case "?":
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
	case "/", ":":
		m.ui.command = CommandInput{cmd: CommandFromPrefix(rune(msg.String()[0]))}
		m.ui.mode = modeCommand
	case "down", "j":
		if m.data.displayed != nil && m.cursor < m.data.displayed.Filtered.Len()-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "u", "pgup":
		m.pageUp()
	case "d", "pgdown":
		m.pageDown()
	case "left", "h":
		m.viewport.ScrollLeft(4)
	case "right", "l":
		m.viewport.ScrollRight(4)
	}

	m.refreshView()
	return m, nil
}

func (m *model) pageDown() {
	if m.data.displayed == nil {
		return
	}
	total := m.data.displayed.Filtered.Len()
	if m.cursor+m.pageRowSize < total {
		m.cursor += m.pageRowSize
	} else {
		m.cursor = total - 1
	}
}

func (m *model) pageUp() {
	m.cursor -= m.pageRowSize
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// refreshView re-renders the table into the viewport and keeps the cursor
// row visible.
func (m *model) refreshView() {
	if !m.ready {
		return
	}
	m.rebuildHeader()
	m.viewport.SetContent(m.renderTable())
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}
