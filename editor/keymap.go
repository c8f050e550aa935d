package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	PageUp, PageDown      key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding
	RemoveLine        key.Binding

	Save, Quit, Find  key.Binding
	ToggleLineNumbers key.Binding
	Dismiss           key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace:  key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:     key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),
		RemoveLine: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("^X", "delete line")),

		Save:              key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^S", "save")),
		Quit:              key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("^Q", "quit")),
		Find:              key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("^F", "find")),
		ToggleLineNumbers: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("^L", "line numbers")),
		Dismiss:           key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	}
}

// moveFor maps a key to a cursor movement.
func (km KeyMap) moveFor(msg tea.KeyMsg) (MoveOp, bool) {
	moves := []struct {
		b  key.Binding
		op MoveOp
	}{
		{km.WordLeft, MoveWordLeft},
		{km.WordRight, MoveWordRight},
		{km.Left, MoveLeft},
		{km.Right, MoveRight},
		{km.Up, MoveUp},
		{km.Down, MoveDown},
		{km.PageUp, MovePageUp},
		{km.PageDown, MovePageDown},
		{km.Home, MoveHome},
		{km.End, MoveEnd},
	}
	for _, mv := range moves {
		if key.Matches(msg, mv.b) {
			return mv.op, true
		}
	}
	return 0, false
}

// editFor maps a key to a text mutation. Printable runes are handled by the
// caller.
func (km KeyMap) editFor(msg tea.KeyMsg) (EditOp, bool) {
	switch {
	case key.Matches(msg, km.Backspace):
		return Backspace, true
	case key.Matches(msg, km.Delete):
		return Delete, true
	case key.Matches(msg, km.Enter):
		return Enter, true
	case key.Matches(msg, km.Tab):
		return Insert('\t'), true
	case key.Matches(msg, km.RemoveLine):
		return RemoveLine, true
	}
	return EditOp{}, false
}
