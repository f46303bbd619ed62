package mino

import (
	"fmt"
	"strings"
)

// Shape is a rectangular occupancy matrix in the piece's own frame:
// Shape[row][col] is true when that sub-cell is part of the piece.
// Shapes are treated as immutable; Rotate always returns a new matrix.
type Shape [][]bool

var (
	ShapeI = MustParseShape("XXXX")
	ShapeO = MustParseShape("XX", "XX")
	ShapeT = MustParseShape(".X.", "XXX")
	ShapeS = MustParseShape(".XX", "XX.")
	ShapeZ = MustParseShape("XX.", ".XX")
	ShapeJ = MustParseShape("X..", "XXX")
	ShapeL = MustParseShape("..X", "XXX")
)

// Tetrominoes lists the canonical shapes. The piece type of Tetrominoes[i]
// is Block(i+1).
var Tetrominoes = []Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

// ParseShape builds a shape from equally sized rows where 'X' marks an
// occupied cell and '.' an empty one.
func ParseShape(rows ...string) (Shape, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("invalid shape: no cells")
	}

	s := make(Shape, len(rows))
	for r, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("invalid shape: row %d has width %d, expected %d", r, len(row), len(rows[0]))
		}

		s[r] = make([]bool, len(row))
		for c, ch := range row {
			switch ch {
			case 'X':
				s[r][c] = true
			case '.':
			default:
				return nil, fmt.Errorf("invalid shape: unexpected %q at row %d col %d", ch, r, c)
			}
		}
	}

	return s, nil
}

func MustParseShape(rows ...string) Shape {
	s, err := ParseShape(rows...)
	if err != nil {
		panic(err)
	}

	return s
}

func (s Shape) Rows() int { return len(s) }

func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

// Rotate returns the shape turned 90 degrees clockwise. An R×C shape becomes
// C×R and the cell at [r][c] moves to [c][R-1-r].
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()

	rotated := make(Shape, cols)
	for c := range rotated {
		rotated[c] = make([]bool, rows)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			rotated[c][rows-1-r] = s[r][c]
		}
	}

	return rotated
}

func (s Shape) Copy() Shape {
	c := make(Shape, len(s))
	for r := range s {
		c[r] = make([]bool, len(s[r]))
		copy(c[r], s[r])
	}

	return c
}

func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}

	for r := range s {
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}

	return true
}

// Points returns the occupied sub-cells in the shape's local frame.
func (s Shape) Points() []Point {
	var points []Point
	for r := range s {
		for c, filled := range s[r] {
			if filled {
				points = append(points, Point{c, r})
			}
		}
	}

	return points
}

func (s Shape) String() string {
	var b strings.Builder
	for r := range s {
		if r > 0 {
			b.WriteRune('\n')
		}

		for _, filled := range s[r] {
			if filled {
				b.WriteRune('X')
			} else {
				b.WriteRune('.')
			}
		}
	}

	return b.String()
}
