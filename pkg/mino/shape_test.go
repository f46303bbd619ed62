package mino

import (
	"testing"
)

func TestShapeRotate(t *testing.T) {
	for i, s := range Tetrominoes {
		rotated := s.Rotate()
		if rotated.Rows() != s.Cols() || rotated.Cols() != s.Rows() {
			t.Errorf("failed to rotate shape %d: expected %dx%d, got %dx%d", i, s.Cols(), s.Rows(), rotated.Rows(), rotated.Cols())
		}

		full := s
		for r := 0; r < 4; r++ {
			full = full.Rotate()
		}
		if !full.Equal(s) {
			t.Errorf("failed to rotate shape %d four times back to itself: got\n%s\nwanted\n%s", i, full, s)
		}

		if len(rotated.Points()) != 4 {
			t.Errorf("failed to rotate shape %d: expected 4 cells, got %d", i, len(rotated.Points()))
		}
	}
}

func TestShapeRotateClockwise(t *testing.T) {
	got := ShapeT.Rotate()
	want := MustParseShape("X.", "XX", "X.")
	if !got.Equal(want) {
		t.Errorf("failed to rotate T clockwise: got\n%s\nwanted\n%s", got, want)
	}

	got = ShapeL.Rotate()
	want = MustParseShape("X.", "X.", "XX")
	if !got.Equal(want) {
		t.Errorf("failed to rotate L clockwise: got\n%s\nwanted\n%s", got, want)
	}

	if ShapeI.Rotate().String() != "X\nX\nX\nX" {
		t.Errorf("failed to rotate I clockwise: got\n%s", ShapeI.Rotate())
	}
}

func TestShapeRotateDoesNotMutate(t *testing.T) {
	before := ShapeS.String()
	_ = ShapeS.Rotate()
	if ShapeS.String() != before {
		t.Error("rotation modified the original shape")
	}

	c := ShapeZ.Copy()
	c[0][0] = false
	if !ShapeZ[0][0] {
		t.Error("modifying a copy changed the original shape")
	}
}

func TestParseShape(t *testing.T) {
	if _, err := ParseShape(); err == nil {
		t.Error("failed to reject empty shape")
	}
	if _, err := ParseShape("XX", "X"); err == nil {
		t.Error("failed to reject ragged shape")
	}
	if _, err := ParseShape("X?"); err == nil {
		t.Error("failed to reject unknown cell")
	}

	s, err := ParseShape(".X", "XX")
	if err != nil {
		t.Fatalf("failed to parse shape: %s", err)
	}

	points := s.Points()
	expected := []Point{{1, 0}, {0, 1}, {1, 1}}
	if len(points) != len(expected) {
		t.Fatalf("unexpected points %v", points)
	}
	for i := range expected {
		if points[i] != expected[i] {
			t.Errorf("unexpected point %d: got %s wanted %s", i, points[i], expected[i])
		}
	}
}

func TestPieceMoves(t *testing.T) {
	p := NewPiece(ShapeO, BlockO, Point{4, 0})

	moved := p.Moved(-1, 2)
	if moved.X != 3 || moved.Y != 2 {
		t.Errorf("failed to move piece: got %s", moved.Point)
	}
	if p.X != 4 || p.Y != 0 {
		t.Errorf("moving a piece changed the original: %s", p.Point)
	}

	abs := moved.Points()
	if abs[0] != (Point{3, 2}) || abs[3] != (Point{4, 3}) {
		t.Errorf("unexpected absolute points %v", abs)
	}

	r := NewPiece(ShapeI, BlockI, Point{3, 0}).Rotated()
	if r.Shape.Rows() != 4 || r.X != 3 || r.Y != 0 {
		t.Errorf("unexpected rotated piece %s %dx%d", r, r.Shape.Rows(), r.Shape.Cols())
	}
}
