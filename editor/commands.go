package editor

// MoveOp is a cursor movement command.
type MoveOp int

const (
	MoveUp MoveOp = iota
	MoveDown
	MoveLeft
	MoveRight
	MovePageUp
	MovePageDown
	MoveHome
	MoveEnd
	MoveWordLeft
	MoveWordRight
)

func (op MoveOp) String() string {
	switch op {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MovePageUp:
		return "page-up"
	case MovePageDown:
		return "page-down"
	case MoveHome:
		return "home"
	case MoveEnd:
		return "end"
	case MoveWordLeft:
		return "word-left"
	case MoveWordRight:
		return "word-right"
	default:
		return "unknown"
	}
}

// EditKind selects the text mutation performed by an EditOp.
type EditKind int

const (
	EditInsert EditKind = iota
	EditDelete
	EditBackspace
	EditEnter
	EditRemoveLine
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	case EditBackspace:
		return "backspace"
	case EditEnter:
		return "enter"
	case EditRemoveLine:
		return "remove-line"
	default:
		return "unknown"
	}
}

// EditOp is a text mutation command. Char is used by EditInsert only.
type EditOp struct {
	Kind EditKind
	Char rune
}

// Insert returns the command that inserts ch at the cursor.
func Insert(ch rune) EditOp { return EditOp{Kind: EditInsert, Char: ch} }

var (
	Delete     = EditOp{Kind: EditDelete}
	Backspace  = EditOp{Kind: EditBackspace}
	Enter      = EditOp{Kind: EditEnter}
	RemoveLine = EditOp{Kind: EditRemoveLine}
)
