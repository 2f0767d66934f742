package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle, Delete, Undo, Add, Reply, Guide, Quit key.Binding
	Mode                                          key.Binding

	Next, Prev, ModeLeft, ModeRight, Submit, Cancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/end")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "schedule")),
		Reply:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "auto-reply")),
		Guide:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "setup")),
		Mode:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "mode")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		ModeLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "mode")),
		ModeRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "mode")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "schedule")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// listHelp is appended to the list's own help.
func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Delete, k.Undo, k.Mode, k.Reply, k.Guide}
}
