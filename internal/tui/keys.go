package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle, Delete, Add, Mode, Chat key.Binding
	ClearDone, ClearAll, Quit       key.Binding
}

var keys = keyMap{
	Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
	Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Mode:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "personal/team")),
	Chat:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chat")),
	ClearDone: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear done")),
	ClearAll:  key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear all")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.Add, k.Mode, k.Chat}
}

func (k keyMap) full() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.Add, k.Mode, k.Chat, k.ClearDone, k.ClearAll, k.Quit}
}
