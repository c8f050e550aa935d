package editor

// insertChar inserts at the cursor and follows the character when it added a
// grapheme rather than merging into the previous one.
func (v *Viewport) insertChar(ch rune) {
	before := v.buf.GraphemeCount(v.loc.Line)
	v.buf.InsertChar(ch, v.loc)
	if v.buf.GraphemeCount(v.loc.Line) > before {
		v.moveRight()
	}
}

func (v *Viewport) insertNewline() {
	v.buf.InsertNewline(v.loc)
	v.moveRight()
}

// backspace is move left, then delete, so at column 0 it joins with the
// previous line.
func (v *Viewport) backspace() {
	if v.loc.Line == 0 && v.loc.Grapheme == 0 {
		return
	}
	v.moveLeft()
	v.delete()
}

func (v *Viewport) delete() {
	v.buf.Delete(v.loc)
}

func (v *Viewport) deleteLine() {
	v.buf.DeleteLine(v.loc.Line)
	v.moveUp(1)
}
