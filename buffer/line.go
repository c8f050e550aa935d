package buffer

import "strings"

// Line is one row of the document, stored as grapheme fragments.
//
// The fragment sequence is the only source of truth; the string form is
// always derived by concatenation. Mutations rebuild the text and segment it
// again, so clusters that merge or split across an edit stay correct.
type Line struct {
	fragments []Fragment
}

// NewLine segments text into a Line. text must not contain a newline.
func NewLine(text string) Line {
	return Line{fragments: segment(text)}
}

// String returns the raw text of the line, the form written to disk.
func (l Line) String() string {
	var sb strings.Builder
	for _, f := range l.fragments {
		sb.WriteString(f.Grapheme)
	}
	return sb.String()
}

func (l Line) GraphemeCount() int { return len(l.fragments) }

func (l Line) IsEmpty() bool { return len(l.fragments) == 0 }

// FragmentAt returns the fragment at grapheme index i.
func (l Line) FragmentAt(i int) (Fragment, bool) {
	if i < 0 || i >= len(l.fragments) {
		return Fragment{}, false
	}
	return l.fragments[i], true
}

// Fragments returns a copy of the line's fragments.
func (l Line) Fragments() []Fragment {
	return append([]Fragment(nil), l.fragments...)
}

// WidthUntil returns the rendered column at which grapheme index starts.
// Indices past the end sum the whole line.
func (l Line) WidthUntil(index int) int {
	if index > len(l.fragments) {
		index = len(l.fragments)
	}
	w := 0
	for i := 0; i < index; i++ {
		w += l.fragments[i].Columns()
	}
	return w
}

// Width returns the rendered width of the whole line.
func (l Line) Width() int { return l.WidthUntil(len(l.fragments)) }

// VisibleSlice returns the text painted for the half-open column range
// [start, end).
//
// Fragments fully inside the range are painted verbatim (or as their
// replacement glyph). A fragment cut by the left edge paints one
// TruncationMarker in the first column; a fragment cut by the right edge
// paints TruncationMarker and ends the slice.
func (l Line) VisibleSlice(start, end int) string {
	if start >= end {
		return ""
	}

	var sb strings.Builder
	pos := 0
	for _, f := range l.fragments {
		if pos >= end {
			break
		}
		fragEnd := pos + f.Columns()
		if fragEnd > start {
			if fragEnd > end {
				sb.WriteRune(TruncationMarker)
				break
			}
			if pos < start {
				sb.WriteRune(TruncationMarker)
			} else {
				sb.WriteString(f.Display())
			}
		}
		pos = fragEnd
	}
	return sb.String()
}

// InsertChar inserts ch before the fragment at index. Indices past the end
// append; negative indices insert at the start.
func (l *Line) InsertChar(ch rune, index int) {
	var sb strings.Builder
	inserted := false
	for i, f := range l.fragments {
		if !inserted && i >= index {
			sb.WriteRune(ch)
			inserted = true
		}
		sb.WriteString(f.Grapheme)
	}
	if !inserted {
		sb.WriteRune(ch)
	}
	l.fragments = segment(sb.String())
}

// Delete removes the fragment at index. Out-of-range indices are a no-op.
func (l *Line) Delete(index int) {
	if index < 0 || index >= len(l.fragments) {
		return
	}
	var sb strings.Builder
	for i, f := range l.fragments {
		if i != index {
			sb.WriteString(f.Grapheme)
		}
	}
	l.fragments = segment(sb.String())
}

// Split removes the fragments from at onward and returns them as a new Line.
// When at is past the end, the line is left unchanged and an empty Line is
// returned; callers are expected to pass an in-range index.
func (l *Line) Split(at int) Line {
	if at > len(l.fragments) {
		return Line{}
	}
	if at < 0 {
		at = 0
	}
	tail := append([]Fragment(nil), l.fragments[at:]...)
	l.fragments = l.fragments[:at:at]
	return Line{fragments: tail}
}

// Append concatenates other's text onto l.
func (l *Line) Append(other Line) {
	l.fragments = segment(l.String() + other.String())
}
