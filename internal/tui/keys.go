package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	New      key.Binding
	Delete   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Plus     key.Binding
	Minus    key.Binding
	Complete key.Binding
	Export   key.Binding
	Tab1     key.Binding
	Tab2     key.Binding
	Tab3     key.Binding
	Tab4     key.Binding
	Tab      key.Binding
	Help     key.Binding
	Enter    key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	Quit     key.Binding
}

// bind builds a binding whose help label is its first key unless label is set.
func bind(label, desc string, keys ...string) key.Binding {
	if label == "" {
		label = keys[0]
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

var keys = keyMap{
	New:      bind("", "new", "n"),
	Delete:   bind("", "delete", "d"),
	MoveUp:   bind("", "move up", "K", "shift+up"),
	MoveDown: bind("", "move down", "J", "shift+down"),
	Plus:     bind("", "+10%", "+", "="),
	Minus:    bind("", "-10%", "-", "_"),
	Complete: bind("", "complete", "c"),
	Export:   bind("", "export", "e"),

	Tab1: bind("", "vision", "1"),
	Tab2: bind("", "journal", "2"),
	Tab3: bind("", "exercise", "3"),
	Tab4: bind("", "progress", "4"),
	Tab:  bind("", "next tab", "tab"),

	Help:  bind("", "help", "?"),
	Enter: bind("", "select", "enter"),
	Back:  bind("", "back", "esc"),
	Up:    bind("↑/k", "up", "up", "k"),
	Down:  bind("↓/j", "down", "down", "j"),
	Quit:  bind("q", "quit", "q", "ctrl+c"),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Delete, k.Export, k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Delete, k.Export},
		{k.MoveUp, k.MoveDown, k.Plus, k.Minus, k.Complete},
		{k.Tab1, k.Tab2, k.Tab3, k.Tab4, k.Tab},
		{k.Up, k.Down, k.Enter, k.Back, k.Quit},
	}
}
