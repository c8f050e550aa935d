package editor

// ViewportState is a snapshot of the viewport camera.
type ViewportState struct {
	// TopRow is the document row rendered at screen row 0.
	TopRow int
	// LeftColumn is the rendered column shown at the first content column.
	LeftColumn int
	// VisibleRows is the number of rows available for rendering.
	VisibleRows int
	// ContentWidth is the number of columns left for text after the gutter.
	ContentWidth int
}

// State returns the current viewport state.
func (v *Viewport) State() ViewportState {
	return ViewportState{
		TopRow:       v.scroll.Row,
		LeftColumn:   v.scroll.Col,
		VisibleRows:  v.size.Height,
		ContentWidth: v.contentWidth(),
	}
}

// CursorScreenPosition returns the cursor relative to the viewport's
// top-left cell, gutter included.
func (v *Viewport) CursorScreenPosition() Position {
	p := v.cursorPosition().Sub(v.scroll)
	p.Col += v.gutterColumns()
	return p
}

// cursorPosition is the cursor in document rows and rendered columns.
func (v *Viewport) cursorPosition() Position {
	col := 0
	if line, ok := v.buf.Line(v.loc.Line); ok {
		col = line.WidthUntil(v.loc.Grapheme)
	}
	return Position{Row: v.loc.Line, Col: col}
}
