package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/hew"
	"github.com/iw2rmb/hew/internal/grapheme"
)

type rowKind int

const (
	rowText rowKind = iota
	rowWelcome
	rowEmpty
)

// visibleRow is one screen row of the viewport before styling.
type visibleRow struct {
	kind   rowKind
	gutter string
	text   string
}

// VisibleLine returns the text painted on screen row row of the viewport,
// gutter included. Rows outside the viewport are empty.
func (v *Viewport) VisibleLine(row int) string {
	if row < 0 || row >= v.size.Height {
		return ""
	}
	r := v.visibleRow(row)
	return r.gutter + r.text
}

func (v *Viewport) visibleRow(row int) visibleRow {
	idx := v.scroll.Row + row
	var r visibleRow

	if v.showLineNumbers {
		if idx < v.buf.LineCount() {
			r.gutter = fmt.Sprintf("%4d  ", idx+1)
		} else {
			r.gutter = strings.Repeat(" ", gutterWidth)
		}
	}

	width := v.contentWidth()
	switch line, ok := v.buf.Line(idx); {
	case ok:
		r.kind = rowText
		r.text = line.VisibleSlice(v.scroll.Col, v.scroll.Col+width)
	case v.buf.IsEmpty() && row == v.size.Height/3:
		r.kind = rowWelcome
		r.text = welcomeMessage(width)
	default:
		r.kind = rowEmpty
		if width > 0 {
			r.text = "~"
		}
	}
	return r
}

// welcomeMessage is "~" followed by the banner centred in the rest of width,
// or a bare "~" when the banner does not fit.
func welcomeMessage(width int) string {
	if width <= 0 {
		return ""
	}
	banner := hew.Banner()
	rest := width - 1
	bw := grapheme.Width(banner)
	if rest < bw {
		return "~"
	}
	left := (rest - bw) / 2
	return "~" + strings.Repeat(" ", left) + banner + strings.Repeat(" ", rest-bw-left)
}

// cursorSplit splits the cursor's line as painted into the text before the
// cursor, the cell under it and the text after it. The cell under a cursor
// past the end of the line, or under a glyph cut by the right edge, is a
// space.
func (v *Viewport) cursorSplit() (left, under, right string, ok bool) {
	line, exists := v.buf.Line(v.loc.Line)
	width := v.contentWidth()
	if !exists || width <= 0 {
		return "", "", "", false
	}
	start, end := v.scroll.Col, v.scroll.Col+width
	col := line.WidthUntil(v.loc.Grapheme)
	if col < start || col >= end {
		return "", "", "", false
	}

	left = line.VisibleSlice(start, col)
	under, next := " ", col+1
	if f, ok := line.FragmentAt(v.loc.Grapheme); ok && col+f.Columns() <= end {
		under, next = f.Display(), col+f.Columns()
	}
	right = line.VisibleSlice(next, end)
	return left, under, right, true
}

// renderRows paints every viewport row with the configured styles.
func (m Model) renderRows() []string {
	v := m.view
	st := m.cfg.Style
	cur := v.CursorScreenPosition()
	showCursor := m.prompt == promptNone

	out := make([]string, 0, v.size.Height)
	for row := 0; row < v.size.Height; row++ {
		r := v.visibleRow(row)

		var sb strings.Builder
		if r.gutter != "" {
			sb.WriteString(st.Gutter.Render(r.gutter))
		}

		cursorHere := showCursor && row == cur.Row
		switch {
		case r.kind == rowText && cursorHere:
			if left, under, right, ok := v.cursorSplit(); ok {
				sb.WriteString(st.Text.Render(left))
				sb.WriteString(st.Cursor.Render(under))
				sb.WriteString(st.Text.Render(right))
			} else {
				sb.WriteString(st.Text.Render(r.text))
			}
		case r.kind == rowText:
			sb.WriteString(st.Text.Render(r.text))
		case cursorHere && r.text != "":
			// The cursor sits on the virtual line past the end.
			head, tail := splitFirstGrapheme(r.text)
			sb.WriteString(st.Cursor.Render(head))
			sb.WriteString(st.Tilde.Render(tail))
		default:
			sb.WriteString(st.Tilde.Render(r.text))
		}
		out = append(out, sb.String())
	}
	return out
}

func splitFirstGrapheme(s string) (head, tail string) {
	gs := grapheme.Split(s)
	if len(gs) == 0 {
		return "", ""
	}
	return gs[0], s[len(gs[0]):]
}
