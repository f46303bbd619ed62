package mino

// Block is the content of a single board cell: BlockNone or the type id of
// the piece that settled there.
type Block int

const (
	BlockNone Block = iota
	BlockI
	BlockO
	BlockT
	BlockS
	BlockZ
	BlockJ
	BlockL

	// BlockGarbage marks cells pre-filled before the game started.
	BlockGarbage
)

func (b Block) String() string {
	return string(b.Rune())
}

// Rune returns the single character used by text renderings of a board.
func (b Block) Rune() rune {
	switch b {
	case BlockNone:
		return '.'
	case BlockI:
		return 'I'
	case BlockO:
		return 'O'
	case BlockT:
		return 'T'
	case BlockS:
		return 'S'
	case BlockZ:
		return 'Z'
	case BlockJ:
		return 'J'
	case BlockL:
		return 'L'
	case BlockGarbage:
		return '#'
	default:
		return '?'
	}
}

// Empty reports whether the cell holds no settled block.
func (b Block) Empty() bool {
	return b == BlockNone
}
