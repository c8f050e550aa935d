package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button}
}

func TestUpdateMouse_ClickMovesCursor(t *testing.T) {
	m := sized(Config{Text: "hello\nworld"})

	m = update(m, press(tea.MouseButtonLeft, 3, 1))
	assertLoc(t, m.view, loc(1, 3))

	// Status and message bars are outside the text area.
	m = update(m, press(tea.MouseButtonLeft, 0, 9))
	assertLoc(t, m.view, loc(1, 3))
}

func TestUpdateMouse_ReleaseAndMotionIgnored(t *testing.T) {
	m := sized(Config{Text: "hello\nworld"})

	m = update(m, tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(m, tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionMotion})
	assertLoc(t, m.view, loc(0, 0))
}

func TestUpdateMouse_Wheel(t *testing.T) {
	m := sized(Config{Text: "a\nb\nc\nd\ne"})

	m = update(m, press(tea.MouseButtonWheelDown, 0, 0))
	assertLoc(t, m.view, loc(3, 0))

	m = update(m, press(tea.MouseButtonWheelUp, 0, 0))
	assertLoc(t, m.view, loc(0, 0))
}

func TestUpdateMouse_IgnoredWhilePromptOpen(t *testing.T) {
	m := sized(Config{Text: "hello\nworld"})

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlF})
	m = update(m, press(tea.MouseButtonLeft, 3, 1))
	assertLoc(t, m.view, loc(0, 0))
}
