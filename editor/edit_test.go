package editor

import (
	"strings"
	"testing"
)

func assertText(t *testing.T, v *Viewport, want string) {
	t.Helper()
	if got := v.Buffer().Text(); got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestEdit_EnterOnEmptyLineNeighbour(t *testing.T) {
	v := newTestViewport("ab\n\ncd", Size{Width: 10, Height: 5})
	v.HandleMove(MoveEnd)
	assertLoc(t, v, loc(0, 2))

	v.HandleEdit(Enter)
	assertText(t, v, "ab\n\n\ncd")
	assertLoc(t, v, loc(1, 0))
	if got := v.Buffer().LineCount(); got != 4 {
		t.Fatalf("line count: got %d, want 4", got)
	}
}

func TestEdit_InsertFollowsCharacter(t *testing.T) {
	v := newTestViewport("", Size{Width: 10, Height: 5})
	for _, r := range "hi" {
		v.HandleEdit(Insert(r))
	}
	assertText(t, v, "hi")
	assertLoc(t, v, loc(0, 2))
	if !v.Status().Modified {
		t.Fatalf("expected modified after typing")
	}
}

func TestEdit_CombiningMarkDoesNotAdvance(t *testing.T) {
	v := newTestViewport("e", Size{Width: 10, Height: 5})
	v.HandleMove(MoveEnd)
	v.HandleEdit(Insert('\u0301'))
	assertText(t, v, "e\u0301")
	assertLoc(t, v, loc(0, 1))
}

func TestEdit_BackspaceJoinsLines(t *testing.T) {
	v := newTestViewport("ab\ncd", Size{Width: 10, Height: 5})
	v.HandleMove(MoveDown)
	v.HandleEdit(Backspace)
	assertText(t, v, "abcd")
	assertLoc(t, v, loc(0, 2))

	v.HandleEdit(Backspace)
	assertText(t, v, "acd")
	assertLoc(t, v, loc(0, 1))
}

func TestEdit_BackspaceAtOriginIsNoop(t *testing.T) {
	v := newTestViewport("ab", Size{Width: 10, Height: 5})
	v.HandleEdit(Backspace)
	assertText(t, v, "ab")
	if v.Status().Modified {
		t.Fatalf("no-op backspace must not modify")
	}
}

func TestEdit_DeleteJoinsAndStopsAtEnd(t *testing.T) {
	v := newTestViewport("ab\ncd", Size{Width: 10, Height: 5})
	v.HandleMove(MoveEnd)
	v.HandleEdit(Delete)
	assertText(t, v, "abcd")

	v.HandleMove(MoveEnd)
	v.HandleEdit(Delete)
	assertText(t, v, "abcd")
	assertLoc(t, v, loc(0, 4))
}

func TestEdit_RemoveLineMovesUp(t *testing.T) {
	v := newTestViewport("one\ntwo\nthree", Size{Width: 10, Height: 5})
	v.HandleMove(MoveDown)
	v.HandleMove(MoveDown)
	v.HandleMove(MoveEnd)

	v.HandleEdit(RemoveLine)
	assertText(t, v, "one\ntwo")
	assertLoc(t, v, loc(1, 3))

	v.HandleEdit(RemoveLine)
	v.HandleEdit(RemoveLine)
	assertText(t, v, "")
	assertLoc(t, v, loc(0, 0))
}

func TestEdit_EnterOnVirtualLine(t *testing.T) {
	v := newTestViewport("", Size{Width: 10, Height: 5})
	v.HandleEdit(Enter)
	v.HandleEdit(Enter)
	if got := v.Buffer().LineCount(); got != 2 {
		t.Fatalf("line count: got %d, want 2", got)
	}
	assertLoc(t, v, loc(2, 0))
	v.HandleEdit(Insert('z'))
	assertText(t, v, "\n\nz")
}

func TestEdit_TypingScrollsVertically(t *testing.T) {
	v := newTestViewport("", Size{Width: 10, Height: 3})
	for i := 0; i < 5; i++ {
		v.HandleEdit(Insert('x'))
		v.HandleEdit(Enter)
	}
	assertLoc(t, v, loc(5, 0))
	if got := v.ScrollOffset().Row; got != 3 {
		t.Fatalf("scroll row: got %d, want 3", got)
	}
	if got := v.Buffer().Text(); got != strings.Repeat("x\n", 5) {
		t.Fatalf("text: got %q", got)
	}
}
