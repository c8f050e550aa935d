package buffer

// InsertChar inserts ch at the location. A location on the virtual line past
// the end appends a new line holding ch; locations further out are ignored.
func (b *Buffer) InsertChar(ch rune, at Location) {
	switch {
	case at.Line < 0 || at.Line > len(b.lines):
		return
	case at.Line == len(b.lines):
		b.lines = append(b.lines, NewLine(string(ch)))
	default:
		b.lines[at.Line].InsertChar(ch, at.Grapheme)
	}
	b.dirty = true
}

// Delete removes the grapheme at the location. At or past the end of a line
// the following line is joined onto it; on the last line this is a no-op.
func (b *Buffer) Delete(at Location) {
	if at.Line < 0 || at.Line >= len(b.lines) {
		return
	}
	if at.Grapheme < 0 {
		return
	}

	line := &b.lines[at.Line]
	if at.Grapheme < line.GraphemeCount() {
		line.Delete(at.Grapheme)
		b.dirty = true
		return
	}

	next := at.Line + 1
	if next >= len(b.lines) {
		return
	}
	line.Append(b.lines[next])
	b.lines = append(b.lines[:next], b.lines[next+1:]...)
	b.dirty = true
}

// InsertNewline splits the addressed line at the location, moving the tail
// onto a new line right after it. On the virtual line an empty line is
// appended.
func (b *Buffer) InsertNewline(at Location) {
	switch {
	case at.Line < 0 || at.Line > len(b.lines):
		return
	case at.Line == len(b.lines):
		b.lines = append(b.lines, Line{})
	default:
		line := &b.lines[at.Line]
		split := clampInt(at.Grapheme, 0, line.GraphemeCount())
		tail := line.Split(split)
		b.insertLine(at.Line+1, tail)
	}
	b.dirty = true
}

// DeleteLine removes the whole line at index.
func (b *Buffer) DeleteLine(index int) {
	if index < 0 || index >= len(b.lines) {
		return
	}
	b.lines = append(b.lines[:index], b.lines[index+1:]...)
	b.dirty = true
}

func (b *Buffer) insertLine(index int, line Line) {
	b.lines = append(b.lines, Line{})
	copy(b.lines[index+1:], b.lines[index:])
	b.lines[index] = line
}
