package editor

import (
	"github.com/iw2rmb/hew/buffer"
	"github.com/iw2rmb/hew/internal/log"
)

// gutterWidth is the number of columns taken by the line-number gutter.
const gutterWidth = 6

// Viewport is the cursor and scroll controller over one buffer.
//
// After every command the cursor's grapheme index is at most the grapheme
// count of its line, and the cursor's rendered position lies inside the
// visible rectangle.
type Viewport struct {
	buf *buffer.Buffer
	opt buffer.Options

	size            Size
	loc             buffer.Location
	scroll          Position
	showLineNumbers bool

	search *searchSession
}

// NewViewport returns a viewport over buf with the cursor at the document
// start. A nil buf is replaced by an empty, unbound buffer. opt is used by
// Load for documents opened later.
func NewViewport(buf *buffer.Buffer, opt buffer.Options) *Viewport {
	if buf == nil {
		buf = buffer.New("", opt)
	}
	return &Viewport{buf: buf, opt: opt}
}

func (v *Viewport) Buffer() *buffer.Buffer { return v.buf }

// Location returns the cursor.
func (v *Viewport) Location() buffer.Location { return v.loc }

// ScrollOffset returns the document row and rendered column at the top-left
// of the visible area.
func (v *Viewport) ScrollOffset() Position { return v.scroll }

func (v *Viewport) Size() Size { return v.size }

// Resize sets the visible size and scrolls the cursor back into view.
func (v *Viewport) Resize(size Size) {
	v.size = Size{Width: max(size.Width, 0), Height: max(size.Height, 0)}
	v.scrollIntoView()
}

func (v *Viewport) ShowLineNumbers() bool { return v.showLineNumbers }

// SetShowLineNumbers turns the line-number gutter on or off.
func (v *Viewport) SetShowLineNumbers(show bool) {
	v.showLineNumbers = show
	v.scrollIntoView()
}

// ToggleLineNumbers flips the line-number gutter.
func (v *Viewport) ToggleLineNumbers() { v.SetShowLineNumbers(!v.showLineNumbers) }

// contentWidth is the number of columns available to document text.
func (v *Viewport) contentWidth() int {
	if v.showLineNumbers {
		return max(v.size.Width-gutterWidth, 0)
	}
	return v.size.Width
}

func (v *Viewport) gutterColumns() int {
	if v.showLineNumbers {
		return gutterWidth
	}
	return 0
}

// HandleMove applies a cursor movement and scrolls the cursor into view.
func (v *Viewport) HandleMove(op MoveOp) {
	switch op {
	case MoveUp:
		v.moveUp(1)
	case MoveDown:
		v.moveDown(1)
	case MoveLeft:
		v.moveLeft()
	case MoveRight:
		v.moveRight()
	case MovePageUp:
		v.moveUp(max(v.size.Height-1, 0))
	case MovePageDown:
		v.moveDown(max(v.size.Height-1, 0))
	case MoveHome:
		v.moveToLineStart()
	case MoveEnd:
		v.moveToLineEnd()
	case MoveWordLeft:
		v.jumpWordLeft()
	case MoveWordRight:
		v.jumpWordRight()
	}
	v.scrollIntoView()
	log.Debug(log.CatView, "move", "op", op, "line", v.loc.Line, "grapheme", v.loc.Grapheme)
}

// HandleEdit applies a text mutation at the cursor and re-derives the cursor.
func (v *Viewport) HandleEdit(op EditOp) {
	switch op.Kind {
	case EditInsert:
		v.insertChar(op.Char)
	case EditDelete:
		v.delete()
	case EditBackspace:
		v.backspace()
	case EditEnter:
		v.insertNewline()
	case EditRemoveLine:
		v.deleteLine()
	}
	v.scrollIntoView()
	log.Debug(log.CatBuffer, "edit", "op", op.Kind, "line", v.loc.Line, "grapheme", v.loc.Grapheme, "lines", v.buf.LineCount())
}
