package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	enter      key.Binding
	togglePlay key.Binding
	stop       key.Binding
	settings   key.Binding
	sound      key.Binding
	back       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start"),
	),
	togglePlay: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "pause/resume"),
	),
	stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop"),
	),
	settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	sound: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mute"),
	),
	back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
