package editor

import (
	"github.com/iw2rmb/hew/buffer"
)

// LocationAt maps a cell in the text area to a document location. (0,0) is
// the top-left cell of the viewport including the gutter. Clicks in the
// gutter map to the start of the line, clicks past the end of a line to its
// end and clicks on rows past the document to the last line.
//
// ok is false when the cell is outside the text area.
func (v *Viewport) LocationAt(cell Position) (buffer.Location, bool) {
	if cell.Row < 0 || cell.Row >= v.size.Height || cell.Col < 0 || cell.Col >= v.size.Width {
		return buffer.Location{}, false
	}
	if v.buf.IsEmpty() {
		return buffer.Location{}, true
	}

	lineIdx := min(v.scroll.Row+cell.Row, v.buf.LineCount()-1)
	line, _ := v.buf.Line(lineIdx)

	x := cell.Col - v.gutterColumns()
	if x < 0 {
		return buffer.Location{Line: lineIdx}, true
	}
	return buffer.Location{Line: lineIdx, Grapheme: graphemeAtColumn(line, x+v.scroll.Col)}, true
}

// graphemeAtColumn returns the grapheme covering col. Both cells of a wide
// glyph map to it.
func graphemeAtColumn(line buffer.Line, col int) int {
	acc := 0
	for i, f := range line.Fragments() {
		acc += f.Columns()
		if col < acc {
			return i
		}
	}
	return line.GraphemeCount()
}

// MoveTo places the cursor at loc, snapped to the document, and scrolls it
// into view.
func (v *Viewport) MoveTo(loc buffer.Location) {
	v.loc = buffer.Location{Line: max(loc.Line, 0), Grapheme: loc.Grapheme}
	v.snapToValidLine()
	v.snapToValidGrapheme()
	v.scrollIntoView()
}
