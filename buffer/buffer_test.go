package buffer

import (
	"fmt"
	"testing"
)

func lineTexts(b *Buffer) []string {
	out := make([]string, 0, b.LineCount())
	for i := 0; i < b.LineCount(); i++ {
		l, _ := b.Line(i)
		out = append(out, l.String())
	}
	return out
}

func assertLines(t *testing.T, b *Buffer, want ...string) {
	t.Helper()
	got := lineTexts(b)
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
}

func TestNew_SplitsLines(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: []string{}},
		{text: "a", want: []string{"a"}},
		{text: "a\n", want: []string{"a"}},
		{text: "a\n\n", want: []string{"a", ""}},
		{text: "a\r\nb", want: []string{"a", "b"}},
		{text: "\n", want: []string{""}},
	}
	for _, tc := range cases {
		b := New(tc.text, Options{})
		assertLines(t, b, tc.want...)
		if b.Dirty() {
			t.Fatalf("New(%q) should not be dirty", tc.text)
		}
	}
}

func TestBuffer_InsertChar(t *testing.T) {
	b := New("", Options{})
	if !b.IsEmpty() {
		t.Fatalf("expected empty buffer")
	}

	b.InsertChar('x', Location{Line: 1})
	if b.Dirty() || !b.IsEmpty() {
		t.Fatalf("insert past virtual line must be a no-op")
	}

	b.InsertChar('a', Location{Line: 0, Grapheme: 0})
	assertLines(t, b, "a")
	if !b.Dirty() {
		t.Fatalf("expected dirty after insert")
	}

	b.InsertChar('b', Location{Line: 0, Grapheme: 1})
	b.InsertChar('c', Location{Line: 1, Grapheme: 0})
	assertLines(t, b, "ab", "c")
}

func TestBuffer_InsertChar_AtEndEqualsAppend(t *testing.T) {
	b := New("hello", Options{})
	b.InsertChar('!', Location{Line: 0, Grapheme: 5})
	assertLines(t, b, "hello!")
}

func TestBuffer_Delete_JoinsLines(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.Delete(Location{Line: 0, Grapheme: 2})
	assertLines(t, b, "abcd")

	b.Delete(Location{Line: 0, Grapheme: 0})
	assertLines(t, b, "bcd")
}

func TestBuffer_Delete_PastEndOfNonFinalLineJoins(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.Delete(Location{Line: 0, Grapheme: 7})
	assertLines(t, b, "abcd")
}

func TestBuffer_Delete_EndOfLastLineIsNoop(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.Delete(Location{Line: 1, Grapheme: 2})
	assertLines(t, b, "ab", "cd")
	if b.Dirty() {
		t.Fatalf("no-op delete must not mark dirty")
	}

	b.Delete(Location{Line: 5, Grapheme: 0})
	b.Delete(Location{Line: -1, Grapheme: 0})
	assertLines(t, b, "ab", "cd")
	if b.Dirty() {
		t.Fatalf("out-of-range delete must not mark dirty")
	}
}

func TestBuffer_InsertNewline(t *testing.T) {
	b := New("ab\n\ncd", Options{})
	b.InsertNewline(Location{Line: 0, Grapheme: 2})
	assertLines(t, b, "ab", "", "", "cd")

	b.InsertNewline(Location{Line: 3, Grapheme: 1})
	assertLines(t, b, "ab", "", "", "c", "d")

	b.InsertNewline(Location{Line: 5, Grapheme: 0})
	assertLines(t, b, "ab", "", "", "c", "d", "")

	b.InsertNewline(Location{Line: 0, Grapheme: 0})
	assertLines(t, b, "", "ab", "", "", "c", "d", "")
}

func TestBuffer_DeleteLine(t *testing.T) {
	b := New("a\nb\nc", Options{})
	b.DeleteLine(1)
	assertLines(t, b, "a", "c")
	b.DeleteLine(2)
	b.DeleteLine(-1)
	assertLines(t, b, "a", "c")
	b.DeleteLine(0)
	b.DeleteLine(0)
	assertLines(t, b)
}

func TestBuffer_GraphemeCountAndText(t *testing.T) {
	b := New("a界\nxyz", Options{})
	if got := b.GraphemeCount(0); got != 2 {
		t.Fatalf("grapheme count line 0: got %d, want 2", got)
	}
	if got := b.GraphemeCount(2); got != 0 {
		t.Fatalf("grapheme count out of range: got %d, want 0", got)
	}
	if got, want := b.Text(), "a界\nxyz"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}
