package mino

import "fmt"

// Piece is the falling tetromino: a shape placed with its origin (top-left
// corner of the shape matrix) at Point. Pieces are values; every movement
// produces a new candidate that the caller validates before keeping it.
type Piece struct {
	Point
	Shape Shape
	Type  Block
}

func NewPiece(s Shape, t Block, loc Point) Piece {
	return Piece{Point: loc, Shape: s, Type: t}
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@%s", p.Type, p.Point)
}

// Moved returns a copy of the piece translated by dx, dy.
func (p Piece) Moved(dx, dy int) Piece {
	p.Point = p.Point.Add(Point{dx, dy})
	return p
}

// Rotated returns a copy of the piece with its shape turned clockwise around
// the unchanged origin.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Points returns the occupied cells in absolute board coordinates.
func (p Piece) Points() []Point {
	points := p.Shape.Points()
	for i := range points {
		points[i] = points[i].Add(p.Point)
	}

	return points
}
