// Package editor provides the viewport/cursor controller that drives a
// buffer.Buffer, and a Bubble Tea Model that hosts it in a terminal.
//
// The Viewport owns the cursor, the scroll offset and the visible size. It
// translates MoveOp and EditOp commands into buffer operations and keeps the
// cursor inside the visible rectangle after every command. The Model decodes
// keys into those commands and adds the status bar, message bar and the
// command-bar prompts for saving and searching. Left clicks place the
// cursor and the wheel moves it.
package editor
