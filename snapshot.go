package main

import (
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"

	"github.com/andareed/siftly-plot/logging"
)

// --- Wire format ---

const sessionVersion = 1

// sessionDTO captures what the user had dialed in: the source file, the
// window, and the field selection. The dataset itself is reloaded from the
// source on restore.
type sessionDTO struct {
	Version     int      `json:"version"`
	Source      string   `json:"source,omitempty"` // empty means the bundled dataset
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Fields      []string `json:"fields"`
	ShowSummary bool     `json:"showSummary,omitempty"`
}

// saveSession writes the current window and selection to a JSON file.
func saveSession(m *model, path string) error {
	dto := sessionDTO{
		Version:     sessionVersion,
		Source:      m.data.sourcePath,
		Start:       m.data.window.Start.Format(timeInputLayout),
		End:         m.data.window.End.Format(timeInputLayout),
		Fields:      m.data.selectedFields(),
		ShowSummary: m.ui.showSummary,
	}

	data, err := sonic.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// loadSession reads a session file back.
func loadSession(path string) (sessionDTO, error) {
	var dto sessionDTO
	data, err := os.ReadFile(path)
	if err != nil {
		return dto, err
	}
	if err := sonic.Unmarshal(data, &dto); err != nil {
		return dto, err
	}
	if dto.Version != sessionVersion {
		return dto, fmt.Errorf("session version %d not supported (want %d)", dto.Version, sessionVersion)
	}
	return dto, nil
}

// applySession restores the saved window and field selection onto a freshly
// loaded model. Fields that no longer exist in the source are skipped with a
// log line rather than failing the whole restore.
func applySession(m *model, dto sessionDTO) {
	if start, ok := parseWindowInput(dto.Start, time.Local); ok {
		if end, ok := parseWindowInput(dto.End, time.Local); ok && !start.After(end) {
			m.data.window.Start = start
			m.data.window.End = end
			m.data.windowSet = true
		}
	}

	if len(dto.Fields) > 0 {
		selected := make([]bool, len(m.data.table.Fields))
		for _, name := range dto.Fields {
			idx := m.data.table.FieldIndex(name)
			if idx < 0 {
				logging.Warnf("session: field %q not in source, skipping", name)
				continue
			}
			selected[idx] = true
		}
		m.data.selected = selected
	}

	m.ui.showSummary = dto.ShowSummary
}
