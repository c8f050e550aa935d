package editor

import (
	"github.com/iw2rmb/hew/buffer"
	"github.com/iw2rmb/hew/internal/log"
)

// searchSession remembers where an incremental search started.
type searchSession struct {
	prevLoc    buffer.Location
	prevScroll Position
	query      string
}

// EnterSearch starts a search session at the current cursor.
func (v *Viewport) EnterSearch() {
	v.search = &searchSession{prevLoc: v.loc, prevScroll: v.scroll}
}

// InSearch reports whether a search session is active.
func (v *Viewport) InSearch() bool { return v.search != nil }

// Search moves the cursor to the first match of query at or after the
// cursor, wrapping around the document once. An empty or missing query
// leaves the cursor where it is.
func (v *Viewport) Search(query string) bool {
	if v.search != nil {
		v.search.query = query
	}
	return v.searchForward(v.loc, query)
}

// SearchNext moves to the next match of the session query after the cursor.
func (v *Viewport) SearchNext() bool {
	if v.search == nil {
		return false
	}
	from := buffer.Location{Line: v.loc.Line, Grapheme: v.loc.Grapheme + 1}
	return v.searchForward(from, v.search.query)
}

// SearchPrev moves to the previous match of the session query before the
// cursor.
func (v *Viewport) SearchPrev() bool {
	if v.search == nil {
		return false
	}
	loc, ok := v.buf.SearchBackward(v.loc, v.search.query)
	return v.jumpTo(loc, ok, v.search.query)
}

// DismissSearch ends the session and restores the cursor and scroll offset
// it started from.
func (v *Viewport) DismissSearch() {
	if v.search != nil {
		v.loc = v.search.prevLoc
		v.scroll = v.search.prevScroll
	}
	v.search = nil
	v.snapToValidLine()
	v.snapToValidGrapheme()
	v.scrollIntoView()
}

// ExitSearch ends the session and keeps the cursor on the last match.
func (v *Viewport) ExitSearch() { v.search = nil }

func (v *Viewport) searchForward(from buffer.Location, query string) bool {
	loc, ok := v.buf.SearchForward(from, query)
	return v.jumpTo(loc, ok, query)
}

func (v *Viewport) jumpTo(loc buffer.Location, ok bool, query string) bool {
	if !ok {
		log.Debug(log.CatView, "search miss", "query", query)
		return false
	}
	v.loc = loc
	v.scrollIntoView()
	return true
}
