package editor

import (
	"github.com/spf13/afero"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for an unbound document. Ignored once a file is opened.
	Text string

	// Rendering options. A zero Style renders unstyled text.
	ShowLineNumbers bool
	Style           Style

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap

	// QuitTimes is how many consecutive quit presses discard unsaved
	// changes.
	// default: 2
	QuitTimes int

	// Fs is forwarded to buffer.Options for load and save.
	// default: the OS filesystem
	Fs afero.Fs

	// FileEvents signals external changes to the open file.
	FileEvents <-chan struct{}
}

const defaultQuitTimes = 2

func (c Config) withDefaults() Config {
	if c.QuitTimes <= 0 {
		c.QuitTimes = defaultQuitTimes
	}
	if len(c.KeyMap.Quit.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
