package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	family := "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if j := Join(got); j != text {
		t.Fatalf("join=%q, want %q", j, text)
	}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split(""); got != nil {
		t.Fatalf("split empty: got %q, want nil", got)
	}
	if got := Count(""); got != 0 {
		t.Fatalf("count empty: got %d, want 0", got)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{name: "ascii", in: "a", want: 1},
		{name: "combining", in: "e\u0301", want: 1},
		{name: "cjk", in: "\u754c", want: 2},
		{name: "emoji", in: "\U0001F642", want: 2},
		{name: "control", in: "\x01", want: 0},
		{name: "combining-only", in: "\u0301", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Width(tc.in); got != tc.want {
				t.Fatalf("Width(%q): got %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if !IsSpace("\u00a0") {
		t.Fatalf("no-break space should be space")
	}
	if IsSpace("a") || IsSpace("") {
		t.Fatalf("letter and empty should not be space")
	}
	if !IsControl("\x07") {
		t.Fatalf("bell should be control")
	}
	if IsControl("\x07\x07") || IsControl("a") || IsControl("") {
		t.Fatalf("only a single control rune is control")
	}
}
