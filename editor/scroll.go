package editor

// scrollIntoView moves the scroll offset just enough for the cursor to be
// visible. The viewport size never changes here.
func (v *Viewport) scrollIntoView() {
	p := v.cursorPosition()
	v.scroll.Row = scrollAxis(v.scroll.Row, p.Row, v.size.Height)
	v.scroll.Col = scrollAxis(v.scroll.Col, p.Col, v.contentWidth())
}

func scrollAxis(offset, to, extent int) int {
	switch {
	case to < offset:
		return to
	case extent <= 0:
		return offset
	case to >= offset+extent:
		return to - extent + 1
	default:
		return offset
	}
}
