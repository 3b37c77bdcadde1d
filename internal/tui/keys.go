package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Refresh  key.Binding
	Pause    key.Binding
	Activate key.Binding
	Quit     key.Binding
	CtrlC    key.Binding
}

var keys = keyMap{
	Refresh: key.NewBinding(
		key.WithKeys("r"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p", " "),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}
