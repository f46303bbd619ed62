package mino

import (
	"strings"

	"github.com/samber/lo"
)

const (
	Rows = 20
	Cols = 10
)

// Row is one horizontal line of the board.
type Row [Cols]Block

// Filled reports whether every cell of the row is occupied.
func (r Row) Filled() bool {
	return lo.EveryBy(r[:], func(b Block) bool { return !b.Empty() })
}

// Board is the grid of settled cells, indexed Board[y][x] with y = 0 at the
// top. It is a plain value so snapshots are taken by assignment.
type Board [Rows]Row

// InBounds reports whether x, y is a visible board cell.
func InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// Block returns the cell at x, y. Cells outside the board read as BlockNone.
func (b *Board) Block(x, y int) Block {
	if !InBounds(x, y) {
		return BlockNone
	}

	return b[y][x]
}

// SetBlock writes a block into an empty, in-bounds cell.
func (b *Board) SetBlock(x, y int, block Block) bool {
	if !InBounds(x, y) || !b[y][x].Empty() {
		return false
	}

	b[y][x] = block
	return true
}

// Valid reports whether p can occupy its position. Cells above the top edge
// only need to be within the horizontal bounds; every other cell must be on
// the board and empty.
func (b *Board) Valid(p Piece) bool {
	for _, pt := range p.Points() {
		if pt.X < 0 || pt.X >= Cols || pt.Y >= Rows {
			return false
		}

		if pt.Y >= 0 && !b[pt.Y][pt.X].Empty() {
			return false
		}
	}

	return true
}

// Merge writes the piece's type into every cell it covers. Cells outside the
// board are skipped.
func (b *Board) Merge(p Piece) {
	for _, pt := range p.Points() {
		if InBounds(pt.X, pt.Y) {
			b[pt.Y][pt.X] = p.Type
		}
	}
}

func (b *Board) LineFilled(y int) bool {
	if y < 0 || y >= Rows {
		return false
	}

	return b[y].Filled()
}

// ClearFullLines removes every full row, shifting the rows above it down and
// emptying the top row, and returns the number of rows removed. The scan runs
// bottom to top and re-examines a row index after each shift, since the row
// that moved into it may be full as well.
func (b *Board) ClearFullLines() int {
	cleared := 0

	for y := Rows - 1; y >= 0; y-- {
		if !b[y].Filled() {
			continue
		}

		for above := y; above > 0; above-- {
			b[above] = b[above-1]
		}
		b[0] = Row{}

		cleared++
		y++
	}

	return cleared
}

// FilledLines counts the rows that are currently full.
func (b *Board) FilledLines() int {
	return lo.CountBy(b[:], Row.Filled)
}

// Occupied counts the non-empty cells.
func (b *Board) Occupied() int {
	return lo.SumBy(b[:], func(r Row) int {
		return lo.CountBy(r[:], func(c Block) bool { return !c.Empty() })
	})
}

// Render returns the board as text, one line per row from the top, with the
// given piece drawn over the settled cells.
func (b *Board) Render(p *Piece) string {
	overlay := *b
	if p != nil {
		overlay.Merge(*p)
	}

	var s strings.Builder
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			s.WriteRune(overlay[y][x].Rune())
		}

		if y < Rows-1 {
			s.WriteRune('\n')
		}
	}

	return s.String()
}
