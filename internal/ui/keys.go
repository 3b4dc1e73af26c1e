package ui

import "github.com/charmbracelet/bubbles/key"

// mainKeyMap holds the main screen bindings.
type mainKeyMap struct {
	Quit       key.Binding
	ToggleAnim key.Binding
	OpenWave   key.Binding
}

var mainKeys = mainKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ToggleAnim: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "toggle animation"),
	),
	OpenWave: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "wave viewer"),
	),
}

func (k mainKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleAnim, k.OpenWave, k.Quit}
}

func (k mainKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// waveKeyMap holds the wave viewer bindings.
type waveKeyMap struct {
	Scenario key.Binding
	Pause    key.Binding
	Regen    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

var waveKeys = waveKeyMap{
	Scenario: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1/2/3", "scenario"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause"),
	),
	Regen: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "regen"),
	),
	Back: key.NewBinding(
		key.WithKeys("b", "esc"),
		key.WithHelp("b/esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

func (k waveKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scenario, k.Pause, k.Regen, k.Back}
}

func (k waveKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
