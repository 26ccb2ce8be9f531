package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Roll  key.Binding
	Hold  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Roll: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "roll"),
		),
		Hold: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-0", "hold die"),
		),
		Reset: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Roll, k.Hold, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// dieIndex maps the hold keys onto die positions, "0" being the tenth die
func dieIndex(k string) (int, bool) {
	if len(k) != 1 || k[0] < '0' || k[0] > '9' {
		return 0, false
	}
	if k[0] == '0' {
		return 9, true
	}
	return int(k[0] - '1'), true
}
