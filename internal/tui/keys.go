package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	JumpTab    key.Binding
	ReturnUp   key.Binding
	ReturnDown key.Binding
	Rerun      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("→/tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←/shift+tab", "prev tab")),
		JumpTab:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "jump to tab")),
		ReturnUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "return +0.5%")),
		ReturnDown: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "return -0.5%")),
		Rerun:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rerun Monte Carlo")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.ReturnUp, k.ReturnDown, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.JumpTab},
		{k.ReturnUp, k.ReturnDown, k.Rerun},
		{k.Help, k.Quit},
	}
}
