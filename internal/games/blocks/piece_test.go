package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func TestSpawnCentersPiece(t *testing.T) {
	tests := []struct {
		kind  Kind
		wantX int
	}{
		{KindI, 3},
		{KindO, 4},
		{KindT, 4},
	}
	for _, tt := range tests {
		p := Spawn(NewShape(tt.kind), 10)
		assert.Equal(t, tt.wantX, p.X, "kind %s", tt.kind)
		assert.Equal(t, 0, p.Y)
	}
}

func TestPieceMoveBlockedByWall(t *testing.T) {
	b := newTestBoard(t, 10, 20)
	p := Piece{Shape: NewShape(KindO), X: 0, Y: 5}

	assert.False(t, p.Move(b, -1, 0))
	assert.Equal(t, 0, p.X)
	assert.True(t, p.Move(b, 1, 0))
	assert.Equal(t, 1, p.X)
}

func TestRotateKicksOffRightWall(t *testing.T) {
	b := newTestBoard(t, 10, 20)
	// T pointing right, flush against the right wall.
	s := NewShape(KindT).RotateCW()
	p := Piece{Shape: s, X: 8, Y: 5}

	assert.True(t, p.Rotate(b))
	assert.Equal(t, 7, p.X, "first fitting kick is -1")
	assert.Equal(t, 5, p.Y, "no vertical kick")
	assert.True(t, p.Shape.Matrix.Equal(s.RotateCW().Matrix))
}

func TestRotateWithoutFitLeavesPiece(t *testing.T) {
	b := newTestBoard(t, 10, 20)
	// A vertical I in the last column needs a kick of -3 to lie flat.
	s := NewShape(KindI).RotateCW()
	p := Piece{Shape: s, X: 9, Y: 5}

	assert.False(t, p.Rotate(b))
	assert.Equal(t, 9, p.X)
	assert.True(t, p.Shape.Matrix.Equal(s.Matrix))
}

func TestRotateBlockedByLockedCells(t *testing.T) {
	b := newTestBoard(t, 10, 20)
	p := Piece{Shape: NewShape(KindI), X: 3, Y: 10}
	// Vertical I at kicks 0, +1, -1, +2, -2 would occupy columns 3, 4, 2, 5, 1.
	for x := 1; x <= 5; x++ {
		b.Set(x, 12, core.ColorRed)
	}

	assert.False(t, p.Rotate(b))
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 1, p.Shape.Matrix.Height())
}

func TestRotateCCWIsThreeClockwiseTurns(t *testing.T) {
	b := newTestBoard(t, 10, 20)
	s := NewShape(KindT)
	p := Piece{Shape: s, X: 4, Y: 5}

	assert.True(t, p.RotateCCW(b))
	assert.Equal(t, 4, p.X)
	assert.True(t, p.Shape.Matrix.Equal(s.RotateCW().RotateCW().RotateCW().Matrix))
	assert.Equal(t, ".#\n##\n.#", p.Shape.Matrix.String())
}

func TestRotateCCWKicksEachStepSeparately(t *testing.T) {
	b := newTestBoard(t, 10, 20)
	s := NewShape(KindT)
	p := Piece{Shape: s, X: 3, Y: 5}
	// Blocks the first clockwise step in place, so it kicks to X=4 and the
	// two later steps start from there.
	b.Set(3, 7, core.ColorRed)

	assert.True(t, p.RotateCCW(b))
	assert.Equal(t, 4, p.X)
	assert.Equal(t, ".#\n##\n.#", p.Shape.Matrix.String())

	// A single counter-clockwise turn fits in place.
	inverse := s.RotateCW().RotateCW().RotateCW()
	assert.True(t, b.Fits(inverse.Matrix, 3, 5))
	assert.NotEqual(t, 3, p.X)
}

func TestRotateCCWStopsAfterBlockedStep(t *testing.T) {
	b := newTestBoard(t, 10, 20)
	// T pointing right: "#." "##" "#.".
	s := NewShape(KindT).RotateCW()
	p := Piece{Shape: s, X: 4, Y: 5}
	// The first step (pointing down) fits in place. The second (pointing
	// left) is blocked at every kick: X=4, 5, 3, 6, 2.
	for _, c := range []core.Point{{X: 5, Y: 7}, {X: 6, Y: 7}, {X: 7, Y: 7}, {X: 3, Y: 6}} {
		b.Set(c.X, c.Y, core.ColorRed)
	}

	assert.True(t, p.RotateCCW(b))
	assert.Equal(t, 4, p.X)
	assert.Equal(t, 5, p.Y)
	assert.Equal(t, "###\n.#.", p.Shape.Matrix.String(), "one clockwise turn, not a counter-clockwise one")

	inverse := s.RotateCW().RotateCW().RotateCW()
	assert.True(t, b.Fits(inverse.Matrix, 4, 5))
	assert.False(t, p.Shape.Matrix.Equal(inverse.Matrix))
}

func TestGhostRow(t *testing.T) {
	b := newTestBoard(t, 10, 20)

	o := Spawn(NewShape(KindO), 10)
	assert.Equal(t, 18, o.GhostRow(b))

	i := Spawn(NewShape(KindI), 10)
	assert.Equal(t, 19, i.GhostRow(b))

	b.Set(4, 10, core.ColorRed)
	assert.Equal(t, 8, o.GhostRow(b))
	assert.Equal(t, 0, o.Y, "ghost does not move the piece")
}
