package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit        key.Binding
	TimeWindow  key.Binding
	Fields      key.Binding
	Refresh     key.Binding
	Summary     key.Binding
	Export      key.Binding
	SaveSession key.Binding
	CopySummary key.Binding
	Search      key.Binding
	Jump        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	RowDown     key.Binding
	RowUp       key.Binding
	OpenHelp    key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	TimeWindow: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "time window"),
	),
	Fields: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "select fields"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Summary: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "toggle summary"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export (.xlsx/.png/.csv)"),
	),
	SaveSession: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "save session"),
	),
	CopySummary: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy summary to clipboard"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to row"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "scroll left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "scroll right"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.TimeWindow,
		k.Fields,
		k.Refresh,
		k.Summary,
		k.Export,
		k.SaveSession,
		k.CopySummary,
		k.Search,
		k.Jump,
		k.PageUp,
		k.PageDown,
	}
}
