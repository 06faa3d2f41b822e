package blocks

import "github.com/vovakirdan/tui-blocks/internal/core"

// KickOffsets are the horizontal shifts tried, in order, when a rotation
// does not fit in place. There is no vertical kick.
var KickOffsets = [...]int{0, 1, -1, 2, -2}

// Piece is a shape placed on the board. (X, Y) is the top-left corner of the
// shape's bounding box in board coordinates; Y may be negative.
type Piece struct {
	Shape Shape
	X, Y  int
}

// Spawn places s horizontally centered on a board of the given width, at
// the top row.
func Spawn(s Shape, cols int) Piece {
	return Piece{
		Shape: s,
		X:     cols/2 - s.Matrix.Width()/2,
		Y:     0,
	}
}

// Kind returns the kind of the piece's shape.
func (p Piece) Kind() Kind {
	return p.Shape.Kind
}

// Color returns the display color of the piece.
func (p Piece) Color() core.Color {
	return p.Shape.Color
}

// Cells returns the board coordinates covered by the piece.
func (p Piece) Cells() []core.Point {
	cells := p.Shape.Matrix.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(p.X, p.Y)
	}
	return cells
}

// Collides reports whether the piece overlaps the walls, floor or locked cells.
func (p Piece) Collides(b *Board) bool {
	return b.Collides(p.Shape.Matrix, p.X, p.Y)
}

// Move shifts the piece by (dx, dy) if the target position fits.
func (p *Piece) Move(b *Board, dx, dy int) bool {
	if b.Collides(p.Shape.Matrix, p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// Rotate turns the piece clockwise, trying KickOffsets in order at the same
// row. The first offset that fits is taken. If none fits the piece is left
// unchanged and Rotate reports false.
func (p *Piece) Rotate(b *Board) bool {
	rotated := p.Shape.RotateCW()
	for _, dx := range KickOffsets {
		if b.Fits(rotated.Matrix, p.X+dx, p.Y) {
			p.Shape = rotated
			p.X += dx
			return true
		}
	}
	return false
}

// RotateCCW performs three independent clockwise attempts, each with its own
// kick search. When kicks differ between steps, the result can differ from a
// single counter-clockwise turn. It reports whether any attempt succeeded.
func (p *Piece) RotateCCW(b *Board) bool {
	turned := false
	for range 3 {
		if p.Rotate(b) {
			turned = true
		}
	}
	return turned
}

// GhostRow returns the row the piece would land on if dropped now.
func (p Piece) GhostRow(b *Board) int {
	y := p.Y
	for b.Fits(p.Shape.Matrix, p.X, y+1) {
		y++
	}
	return y
}
