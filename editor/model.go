package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/iw2rmb/hew"
	"github.com/iw2rmb/hew/buffer"
	"github.com/iw2rmb/hew/internal/log"
)

const (
	messageTimeout = 5 * time.Second
	// Watcher events this soon after our own save are ignored.
	selfWriteGrace = 2 * time.Second

	helpMessage = "HELP: ^S save | ^Q quit | ^F find | ^L line numbers"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptSave
	promptSearch
)

type messageExpiredMsg struct{ id int }

type fileChangedMsg struct{}

// Model is the Bubble Tea program that hosts a Viewport: it decodes keys
// into viewport commands and draws the status bar and the message or
// command bar below the text.
type Model struct {
	cfg  Config
	view *Viewport

	width, height int

	prompt promptKind
	input  textinput.Model

	message   string
	messageID int

	quitPresses int
	quitting    bool
	lastSave    time.Time
	title       string

	now func() time.Time
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	opt := buffer.Options{Fs: cfg.Fs}

	view := NewViewport(buffer.New(cfg.Text, opt), opt)
	view.SetShowLineNumbers(cfg.ShowLineNumbers)

	input := textinput.New()
	input.PromptStyle = cfg.Style.Prompt
	_ = input.Cursor.SetMode(cursor.CursorStatic)

	return Model{
		cfg:     cfg,
		view:    view,
		input:   input,
		message: helpMessage,
		now:     time.Now,
	}
}

// Open loads path into the editor. On failure the error is shown on the
// message bar and the current document is kept.
func (m Model) Open(path string) (Model, error) {
	if err := m.view.Load(path); err != nil {
		m.message = fmt.Sprintf("ERROR: could not open %s: %v", path, err)
		return m, err
	}
	return m, nil
}

// Viewport returns the controller driven by the model.
func (m Model) Viewport() *Viewport { return m.view }

// Message returns the text currently shown on the message bar.
func (m Model) Message() string { return m.message }

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		expireMessage(m.messageID),
		waitForFileEvent(m.cfg.FileEvents),
		tea.SetWindowTitle(m.windowTitle()),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		title := m.titleCmd()
		return m, tea.Batch(cmd, title)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case messageExpiredMsg:
		if msg.id == m.messageID {
			m.message = ""
		}
		return m, nil
	case fileChangedMsg:
		var cmd tea.Cmd
		if m.now().Sub(m.lastSave) >= selfWriteGrace {
			log.Info(log.CatWatcher, "file changed on disk", "path", m.view.Buffer().File().Path())
			cmd = m.setMessage("file changed on disk")
		}
		return m, tea.Batch(cmd, waitForFileEvent(m.cfg.FileEvents))
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = max(width, 0), max(height, 0)
	m.view.Resize(Size{Width: m.width, Height: max(m.height-2, 0)})
	m.input.Width = max(m.width-ansi.StringWidth(m.input.Prompt)-1, 0)
}

// setMessage shows text on the message bar until it expires.
func (m *Model) setMessage(text string) tea.Cmd {
	m.messageID++
	m.message = text
	return expireMessage(m.messageID)
}

func expireMessage(id int) tea.Cmd {
	return tea.Tick(messageTimeout, func(time.Time) tea.Msg {
		return messageExpiredMsg{id: id}
	})
}

func waitForFileEvent(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

func (m Model) windowTitle() string {
	return fmt.Sprintf("%s - %s", m.view.Status().FileName, hew.Name)
}

// titleCmd updates the terminal title when the file name changed.
func (m *Model) titleCmd() tea.Cmd {
	title := m.windowTitle()
	if title == m.title {
		return nil
	}
	m.title = title
	return tea.SetWindowTitle(title)
}

func (m Model) View() string {
	if m.quitting || m.height == 0 || m.width == 0 {
		return ""
	}

	lines := m.renderRows()
	if m.height > 1 {
		lines = append(lines, m.renderStatusBar())
	}
	lines = append(lines, m.renderBottomBar())
	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	st := m.view.Status()
	left := fmt.Sprintf("%s - %s %s", st.FileName, st.LineCountString(), st.ModifiedIndicator())
	right := st.PositionIndicator()

	var line string
	if gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right); gap >= 0 {
		line = left + strings.Repeat(" ", gap) + right
	} else {
		line = truncate.String(left, uint(m.width))
		line += strings.Repeat(" ", max(m.width-ansi.StringWidth(line), 0))
	}
	return m.cfg.Style.StatusBar.Render(line)
}

func (m Model) renderBottomBar() string {
	if m.prompt != promptNone {
		return m.input.View()
	}
	return m.cfg.Style.Message.Render(truncate.String(m.message, uint(m.width)))
}
