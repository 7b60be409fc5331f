package demo

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Reset key.Binding
	Sheet key.Binding
	Close key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset values"),
		),
		Sheet: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle sheet"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close sheet"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Sheet, k.Close, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
