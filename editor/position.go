package editor

// Position is a screen or document coordinate in terminal cells.
type Position struct {
	Row int
	Col int
}

// Sub returns p-o, saturating each component at 0.
func (p Position) Sub(o Position) Position {
	return Position{Row: max(p.Row-o.Row, 0), Col: max(p.Col-o.Col, 0)}
}

// Size is a width and height in terminal cells.
type Size struct {
	Width  int
	Height int
}
