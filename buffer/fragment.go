package buffer

import "github.com/iw2rmb/hew/internal/grapheme"

// RenderWidth is the number of terminal columns a fragment occupies.
type RenderWidth int

const (
	Half RenderWidth = 1
	Full RenderWidth = 2
)

// Glyphs substituted for clusters that would otherwise render invisibly.
const (
	TabReplacement       = ' '
	SpaceReplacement     = '␣'
	ControlReplacement   = '▯'
	ZeroWidthReplacement = '·'

	// TruncationMarker is painted in place of a fragment cut by the viewport edge.
	TruncationMarker = '⋯'
)

// Fragment is one grapheme cluster of a line.
type Fragment struct {
	Grapheme    string
	RenderWidth RenderWidth
	// Replacement is 0 when the cluster is painted as-is.
	Replacement rune
}

func newFragment(cluster string) Fragment {
	if repl := replacementFor(cluster); repl != 0 {
		return Fragment{Grapheme: cluster, RenderWidth: Half, Replacement: repl}
	}
	w := Half
	if grapheme.Width(cluster) > 1 {
		w = Full
	}
	return Fragment{Grapheme: cluster, RenderWidth: w}
}

func replacementFor(cluster string) rune {
	switch {
	case cluster == "\t":
		return TabReplacement
	case cluster == " ":
		return 0
	case grapheme.IsSpace(cluster):
		return SpaceReplacement
	case grapheme.Width(cluster) == 0:
		if grapheme.IsControl(cluster) {
			return ControlReplacement
		}
		return ZeroWidthReplacement
	default:
		return 0
	}
}

// Columns returns the rendered width in terminal columns.
func (f Fragment) Columns() int { return int(f.RenderWidth) }

// HasReplacement reports whether the fragment paints a substitute glyph.
func (f Fragment) HasReplacement() bool { return f.Replacement != 0 }

// Display returns the text painted for the fragment.
func (f Fragment) Display() string {
	if f.Replacement != 0 {
		return string(f.Replacement)
	}
	return f.Grapheme
}

// IsWhitespace reports whether the fragment separates words.
func (f Fragment) IsWhitespace() bool {
	if f.Replacement == TabReplacement || f.Replacement == SpaceReplacement {
		return true
	}
	return grapheme.IsSpace(f.Grapheme)
}

func segment(text string) []Fragment {
	clusters := grapheme.Split(text)
	if len(clusters) == 0 {
		return nil
	}
	out := make([]Fragment, 0, len(clusters))
	for _, c := range clusters {
		out = append(out, newFragment(c))
	}
	return out
}
