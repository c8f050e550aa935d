package editor

import "testing"

func TestSearch_IncrementalNextPrev(t *testing.T) {
	v := newTestViewport("foo\nbar foo\nfoo", Size{Width: 20, Height: 5})
	v.HandleMove(MoveRight)

	v.EnterSearch()
	if !v.InSearch() {
		t.Fatalf("expected active search")
	}

	if !v.Search("f") {
		t.Fatalf("expected match for %q", "f")
	}
	assertLoc(t, v, loc(1, 4))
	// Growing the query keeps an inclusive match in place.
	v.Search("fo")
	v.Search("foo")
	assertLoc(t, v, loc(1, 4))

	v.SearchNext()
	assertLoc(t, v, loc(2, 0))
	v.SearchNext()
	assertLoc(t, v, loc(0, 0))
	v.SearchPrev()
	assertLoc(t, v, loc(2, 0))
	v.SearchPrev()
	assertLoc(t, v, loc(1, 4))

	v.ExitSearch()
	if v.InSearch() {
		t.Fatalf("expected search to end")
	}
	assertLoc(t, v, loc(1, 4))
}

func TestSearch_DismissRestoresLocationAndScroll(t *testing.T) {
	text := "start\n"
	for i := 0; i < 30; i++ {
		text += "filler\n"
	}
	text += "needle\n"
	v := newTestViewport(text, Size{Width: 20, Height: 4})
	v.HandleMove(MoveEnd)

	v.EnterSearch()
	v.Search("needle")
	assertLoc(t, v, loc(31, 0))
	if got := v.ScrollOffset().Row; got != 28 {
		t.Fatalf("scroll on match: got %d, want 28", got)
	}

	v.DismissSearch()
	assertLoc(t, v, loc(0, 5))
	if got := v.ScrollOffset(); got != (Position{}) {
		t.Fatalf("scroll after dismiss: got %+v, want {0 0}", got)
	}
	if v.InSearch() {
		t.Fatalf("expected search to end")
	}
}

func TestSearch_MissAndEmptyQueryKeepCursor(t *testing.T) {
	v := newTestViewport("abc\ndef", Size{Width: 20, Height: 5})
	v.HandleMove(MoveDown)

	v.EnterSearch()
	if v.Search("zzz") {
		t.Fatalf("unexpected match")
	}
	if v.Search("") {
		t.Fatalf("empty query must not match")
	}
	assertLoc(t, v, loc(1, 0))
	if v.SearchNext() || v.SearchPrev() {
		t.Fatalf("empty session query must not match")
	}
}

func TestSearch_NextPrevNeedSession(t *testing.T) {
	v := newTestViewport("aa", Size{Width: 20, Height: 5})
	if v.SearchNext() || v.SearchPrev() {
		t.Fatalf("expected no-op without a search session")
	}
	v.DismissSearch()
	assertLoc(t, v, loc(0, 0))
}

func TestSearch_HorizontalScrollToMatch(t *testing.T) {
	v := newTestViewport("0123456789needle", Size{Width: 5, Height: 2})
	v.EnterSearch()
	v.Search("needle")
	assertLoc(t, v, loc(0, 10))
	if got := v.ScrollOffset().Col; got != 6 {
		t.Fatalf("scroll col: got %d, want 6", got)
	}
}
