package buffer

import "strings"

// lineScanned observes every per-line probe made by the ring search.
var lineScanned = func(line int) {}

// SearchForward returns the first grapheme index at or after from where
// query starts.
func (l Line) SearchForward(from int, query string) (int, bool) {
	if query == "" {
		return 0, false
	}
	text, starts := l.textAndStarts()
	for i := max(from, 0); i < len(starts); i++ {
		if strings.HasPrefix(text[starts[i]:], query) {
			return i, true
		}
	}
	return 0, false
}

// SearchBackward returns the last grapheme index before from where query
// starts.
func (l Line) SearchBackward(from int, query string) (int, bool) {
	if query == "" {
		return 0, false
	}
	text, starts := l.textAndStarts()
	for i := min(from, len(starts)) - 1; i >= 0; i-- {
		if strings.HasPrefix(text[starts[i]:], query) {
			return i, true
		}
	}
	return 0, false
}

// textAndStarts returns the line text and the byte offset of every fragment.
func (l Line) textAndStarts() (string, []int) {
	var sb strings.Builder
	starts := make([]int, len(l.fragments))
	for i, f := range l.fragments {
		starts[i] = sb.Len()
		sb.WriteString(f.Grapheme)
	}
	return sb.String(), starts
}

// SearchForward scans the document as a ring starting at from and returns
// the first match. The starting line is visited twice: first from
// from.Grapheme onward, and once more from its start after wrapping, so at
// most LineCount()+1 lines are searched.
func (b *Buffer) SearchForward(from Location, query string) (Location, bool) {
	n := len(b.lines)
	if query == "" || n == 0 {
		return Location{}, false
	}
	start := max(from.Line, 0) % n
	for step := 0; step <= n; step++ {
		idx := (start + step) % n
		col := 0
		if step == 0 {
			col = from.Grapheme
		}
		lineScanned(idx)
		if g, ok := b.lines[idx].SearchForward(col, query); ok {
			return Location{Line: idx, Grapheme: g}, true
		}
	}
	return Location{}, false
}

// SearchBackward is the mirror of SearchForward: it returns the nearest match
// starting before from, wrapping past the first line to the last once.
func (b *Buffer) SearchBackward(from Location, query string) (Location, bool) {
	n := len(b.lines)
	if query == "" || n == 0 {
		return Location{}, false
	}
	start := clampInt(from.Line, 0, n-1)
	for step := 0; step <= n; step++ {
		idx := ((start-step)%n + n) % n
		col := b.lines[idx].GraphemeCount()
		if step == 0 {
			col = from.Grapheme
		}
		lineScanned(idx)
		if g, ok := b.lines[idx].SearchBackward(col, query); ok {
			return Location{Line: idx, Grapheme: g}, true
		}
	}
	return Location{}, false
}
