package editor

import "github.com/iw2rmb/hew/buffer"

func (v *Viewport) moveUp(step int) {
	v.loc.Line = max(v.loc.Line-step, 0)
	v.snapToValidGrapheme()
}

func (v *Viewport) moveDown(step int) {
	v.loc.Line += step
	v.snapToValidGrapheme()
	v.snapToValidLine()
}

func (v *Viewport) moveLeft() {
	switch {
	case v.loc.Grapheme > 0:
		v.loc.Grapheme--
	case v.loc.Line > 0:
		v.moveUp(1)
		v.moveToLineEnd()
	}
}

func (v *Viewport) moveRight() {
	if v.loc.Grapheme < v.buf.GraphemeCount(v.loc.Line) {
		v.loc.Grapheme++
		return
	}
	v.moveToLineStart()
	v.moveDown(1)
}

func (v *Viewport) moveToLineStart() { v.loc.Grapheme = 0 }

func (v *Viewport) moveToLineEnd() { v.loc.Grapheme = v.buf.GraphemeCount(v.loc.Line) }

// snapToValidGrapheme clamps the grapheme index to the current line. Past the
// last line the only valid index is 0.
func (v *Viewport) snapToValidGrapheme() {
	v.loc.Grapheme = min(max(v.loc.Grapheme, 0), v.buf.GraphemeCount(v.loc.Line))
}

// snapToValidLine allows the virtual line right after the last one.
func (v *Viewport) snapToValidLine() {
	v.loc.Line = min(v.loc.Line, v.buf.LineCount())
}

// jumpWordRight leaves the current word, then skips whitespace to the start
// of the next word. With no next word on the line it goes to the start of
// the next line.
func (v *Viewport) jumpWordRight() {
	line, ok := v.buf.Line(v.loc.Line)
	if !ok {
		return
	}
	n := line.GraphemeCount()
	i := v.loc.Grapheme
	for i < n && !isWhitespaceAt(line, i) {
		i++
	}
	for i < n && isWhitespaceAt(line, i) {
		i++
	}
	if i >= n {
		v.moveToLineStart()
		v.moveDown(1)
		return
	}
	v.loc.Grapheme = i
}

// jumpWordLeft lands on the first grapheme of the current or previous word.
// At column 0 it goes to the end of the previous line.
func (v *Viewport) jumpWordLeft() {
	if v.loc.Grapheme == 0 {
		if v.loc.Line > 0 {
			v.moveUp(1)
			v.moveToLineEnd()
		}
		return
	}
	line, ok := v.buf.Line(v.loc.Line)
	if !ok {
		return
	}
	i := v.loc.Grapheme - 1
	for i > 0 && isWhitespaceAt(line, i) {
		i--
	}
	for i > 0 && !isWhitespaceAt(line, i-1) {
		i--
	}
	v.loc.Grapheme = i
}

func isWhitespaceAt(line buffer.Line, i int) bool {
	f, ok := line.FragmentAt(i)
	return ok && f.IsWhitespace()
}
