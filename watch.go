package main

import (
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/andareed/siftly-plot/logging"
	"github.com/andareed/siftly-plot/series"
	tea "github.com/charmbracelet/bubbletea"
)

type fileChangedMsg struct{ path string }

// watchFile starts an fsnotify watcher on the loaded CSV so edits to the
// file show up without restarting.
func watchFile(path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// waitForChange blocks on the watcher until the file is written or recreated.
func waitForChange(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					return fileChangedMsg{path: ev.Name}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				logging.Warnf("watch: %v", err)
			}
		}
	}
}

// handleFileChanged reloads the table and re-runs the last cycle. A reload is
// just another load event; a broken file leaves the current table in place.
func (m *model) handleFileChanged(msg fileChangedMsg) tea.Cmd {
	logging.Infof("watch: %s changed, reloading", msg.path)

	f, err := os.Open(m.data.sourcePath)
	if err != nil {
		return tea.Batch(
			m.startNotice("Reload failed: "+err.Error(), "error", noticeDuration),
			waitForChange(m.watcher),
		)
	}
	table, err := series.ReadTable(f)
	f.Close()
	if err != nil {
		return tea.Batch(
			m.startNotice("Reload failed: "+err.Error(), "error", noticeDuration),
			waitForChange(m.watcher),
		)
	}

	m.data.table = table
	m.data.timeMin, m.data.timeMax, m.data.hasTimeBounds = table.TimeBounds()
	if len(m.data.selected) != len(table.Fields) {
		m.data.selected = defaultSelection(table)
	}
	if !m.data.windowSet && m.data.hasTimeBounds {
		m.data.window = series.TimeRange{Start: m.data.timeMin, End: m.data.timeMax}
		m.data.windowSet = true
	}

	return tea.Batch(
		m.runRefresh(),
		waitForChange(m.watcher),
	)
}
