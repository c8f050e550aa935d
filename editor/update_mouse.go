package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hew/internal/log"
)

const wheelStep = 3

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.prompt != promptNone || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonLeft:
		loc, ok := m.view.LocationAt(Position{Row: msg.Y, Col: msg.X})
		if !ok {
			return m, nil
		}
		m.view.MoveTo(loc)
		log.Debug(log.CatUI, "click", "x", msg.X, "y", msg.Y, "line", loc.Line, "grapheme", loc.Grapheme)
	case tea.MouseButtonWheelUp:
		for range wheelStep {
			m.view.HandleMove(MoveUp)
		}
	case tea.MouseButtonWheelDown:
		for range wheelStep {
			m.view.HandleMove(MoveDown)
		}
	}
	m.quitPresses = 0
	return m, nil
}
