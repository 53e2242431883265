package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the dashboard.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	TogglePause key.Binding
	Retry       key.Binding

	// Filtering
	Search      key.Binding
	ClearSearch key.Binding
	Confirm     key.Binding
	NextFilter  key.Binding
	PrevFilter  key.Binding
	FilterAll   key.Binding
	FilterCrit  key.Binding
	FilterHigh  key.Binding
	FilterLow   key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		TogglePause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Pause/resume stream"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Try again"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search alerts"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Keep query"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "f"),
			key.WithHelp("tab", "Next severity"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "F"),
			key.WithHelp("shift+tab", "Previous severity"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "All"),
		),
		FilterCrit: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Critical"),
		),
		FilterHigh: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "High"),
		),
		FilterLow: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Low"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Newest"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Oldest"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),
	}
}

// ShortHelp returns key bindings for the status line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextFilter, k.TogglePause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one group per column.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown, k.HalfPageUp, k.HalfPageDown},
		{k.Search, k.ClearSearch, k.Confirm, k.NextFilter, k.PrevFilter, k.FilterAll, k.FilterCrit, k.FilterHigh, k.FilterLow},
		{k.TogglePause, k.CycleTheme, k.Help, k.Quit},
	}
}
