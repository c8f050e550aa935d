package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hew/internal/log"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.prompt {
	case promptSave:
		return m.updateSavePrompt(msg)
	case promptSearch:
		return m.updateSearchPrompt(msg)
	}

	km := m.cfg.KeyMap
	if key.Matches(msg, km.Quit) {
		return m.handleQuit()
	}
	m.quitPresses = 0

	switch {
	case key.Matches(msg, km.Save):
		return m.handleSave()
	case key.Matches(msg, km.Find):
		m.view.EnterSearch()
		return m.openPrompt(promptSearch, "Find: ")
	case key.Matches(msg, km.ToggleLineNumbers):
		m.view.ToggleLineNumbers()
		return m, nil
	case key.Matches(msg, km.Dismiss):
		return m, nil
	}

	if op, ok := km.moveFor(msg); ok {
		m.view.HandleMove(op)
		return m, nil
	}
	if op, ok := km.editFor(msg); ok {
		m.view.HandleEdit(op)
		return m, nil
	}

	if (msg.Type == tea.KeyRunes && !msg.Alt) || msg.Type == tea.KeySpace {
		m.insertRunes(msg.Runes)
	}
	return m, nil
}

// insertRunes types runes at the cursor. Newlines from pasted text split the
// line.
func (m Model) insertRunes(runes []rune) {
	for _, r := range runes {
		switch r {
		case '\r':
		case '\n':
			m.view.HandleEdit(Enter)
		default:
			m.view.HandleEdit(Insert(r))
		}
	}
}

func (m Model) handleQuit() (Model, tea.Cmd) {
	if !m.view.Status().Modified || m.quitPresses+1 >= m.cfg.QuitTimes {
		log.Info(log.CatUI, "quit", "modified", m.view.Status().Modified)
		m.quitting = true
		return m, tea.Quit
	}
	m.quitPresses++
	remaining := m.cfg.QuitTimes - m.quitPresses
	cmd := m.setMessage(fmt.Sprintf(
		"WARNING: File has unsaved changes. Press %s %d more times to quit.",
		m.cfg.KeyMap.Quit.Help().Key, remaining,
	))
	return m, cmd
}

func (m Model) handleSave() (Model, tea.Cmd) {
	if !m.view.IsFileLoaded() {
		return m.openPrompt(promptSave, "Save as: ")
	}
	return m.save("")
}

// save writes to the bound file, or to path when it is not empty.
func (m Model) save(path string) (Model, tea.Cmd) {
	var err error
	if path == "" {
		err = m.view.Save()
	} else {
		err = m.view.SaveAs(path)
	}
	if err != nil {
		cmd := m.setMessage("Failed to save file: " + err.Error())
		return m, cmd
	}
	m.lastSave = m.now()
	cmd := m.setMessage("File saved successfully")
	return m, cmd
}

func (m Model) openPrompt(kind promptKind, prompt string) (Model, tea.Cmd) {
	m.prompt = kind
	m.input.Prompt = prompt
	m.input.SetValue("")
	m.resize(m.width, m.height)
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) updateSavePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Dismiss):
		m.closePrompt()
		cmd := m.setMessage("Save aborted!")
		return m, cmd
	case key.Matches(msg, km.Enter):
		path := strings.TrimSpace(m.input.Value())
		m.closePrompt()
		if path == "" {
			cmd := m.setMessage("Save aborted!")
			return m, cmd
		}
		return m.save(path)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSearchPrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Dismiss):
		m.closePrompt()
		m.view.DismissSearch()
		return m, nil
	case key.Matches(msg, km.Enter):
		m.closePrompt()
		m.view.ExitSearch()
		return m, nil
	case key.Matches(msg, km.Up):
		m.view.SearchPrev()
		return m, nil
	case key.Matches(msg, km.Down):
		m.view.SearchNext()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if query := m.input.Value(); query != before {
		m.view.Search(query)
	}
	return m, cmd
}
