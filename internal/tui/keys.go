package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Present   key.Binding
	Absent    key.Binding
	Reset     key.Binding
	Overtime  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Toggle    key.Binding
	Export    key.Binding
	Theme     key.Binding
	Logout    key.Binding
	Erase     key.Binding
	Confirm   key.Binding
	Tab1      key.Binding
	Tab2      key.Binding
	Tab3      key.Binding
	Tab4      key.Binding
	Tab       key.Binding
	Help      key.Binding
	Enter     key.Binding
	Back      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Present: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "present"),
	),
	Absent: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "absent"),
	),
	Reset: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "unset"),
	),
	Overtime: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "overtime"),
	),
	PrevMonth: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev month"),
	),
	NextMonth: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next month"),
	),
	Today: key.NewBinding(
		key.WithKeys("."),
		key.WithHelp(".", "today"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle off-day"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Logout: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "logout"),
	),
	Erase: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "erase all data"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "confirm"),
	),
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "calendar"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "dashboard"),
	),
	Tab3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "reports"),
	),
	Tab4: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "settings"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Present, k.Absent, k.Overtime, k.PrevMonth, k.NextMonth, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Present, k.Absent, k.Reset, k.Overtime},
		{k.PrevMonth, k.NextMonth, k.Today, k.Toggle},
		{k.Export, k.Theme, k.Logout, k.Erase},
		{k.Tab1, k.Tab2, k.Tab3, k.Tab4},
		{k.Up, k.Down, k.Enter, k.Back, k.Quit},
	}
}
