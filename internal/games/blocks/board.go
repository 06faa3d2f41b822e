package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Empty is the value of an unoccupied board cell.
const Empty = core.ColorDefault

// Board is the fixed grid of locked cells. Rows are indexed top to bottom.
// Its dimensions never change after construction.
type Board struct {
	cols, rows int
	cells      []core.Color // row-major, stride = cols
}

// NewBoard creates an empty board of cols x rows cells.
func NewBoard(cols, rows int) (*Board, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cols, rows)
	}
	return &Board{
		cols:  cols,
		rows:  rows,
		cells: make([]core.Color, cols*rows),
	}, nil
}

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// InBounds reports whether (x, y) is a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// At returns the cell at (x, y). ok is false outside the board.
func (b *Board) At(x, y int) (c core.Color, ok bool) {
	if !b.InBounds(x, y) {
		return Empty, false
	}
	return b.cells[y*b.cols+x], true
}

// Set writes a cell. Writes outside the board are dropped and report false.
func (b *Board) Set(x, y int, c core.Color) bool {
	if !b.InBounds(x, y) {
		return false
	}
	b.cells[y*b.cols+x] = c
	return true
}

// Collides reports whether m placed with its top-left at (x, y) is illegal:
// a filled cell falls outside [0, cols), at or below the floor, or onto a
// locked cell. Cells above the top (y < 0) are only checked against the side
// walls, so pieces may spawn and rotate partly above the board.
func (b *Board) Collides(m Matrix, x, y int) bool {
	for _, p := range m.Cells() {
		gx, gy := x+p.X, y+p.Y
		if gx < 0 || gx >= b.cols || gy >= b.rows {
			return true
		}
		if gy >= 0 && b.cells[gy*b.cols+gx] != Empty {
			return true
		}
	}
	return false
}

// Fits is the negation of Collides.
func (b *Board) Fits(m Matrix, x, y int) bool {
	return !b.Collides(m, x, y)
}

// Lock writes c into every board cell covered by m at (x, y).
// Covered cells outside the board are silently dropped. It returns the
// number of cells written.
func (b *Board) Lock(m Matrix, x, y int, c core.Color) int {
	written := 0
	for _, p := range m.Cells() {
		if b.Set(x+p.X, y+p.Y, c) {
			written++
		}
	}
	return written
}

// RowFull reports whether row y holds no empty cell.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.rows {
		return false
	}
	for _, c := range b.cells[y*b.cols : (y+1)*b.cols] {
		if c == Empty {
			return false
		}
	}
	return true
}

// CompletedRows returns the indexes of all full rows, top to bottom.
func (b *Board) CompletedRows() []int {
	var full []int
	for y := 0; y < b.rows; y++ {
		if b.RowFull(y) {
			full = append(full, y)
		}
	}
	return full
}

// ClearCompletedRows returns a new board with every full row removed.
// Survivors keep their order and settle at the bottom; one empty row per
// cleared row is added at the top. All full rows are judged on the current
// snapshot, so any number of them clears in one call.
func (b *Board) ClearCompletedRows() (*Board, int) {
	out := &Board{cols: b.cols, rows: b.rows, cells: make([]core.Color, len(b.cells))}

	dst := b.rows - 1
	for y := b.rows - 1; y >= 0; y-- {
		if b.RowFull(y) {
			continue
		}
		copy(out.cells[dst*b.cols:(dst+1)*b.cols], b.cells[y*b.cols:(y+1)*b.cols])
		dst--
	}

	// dst+1 rows at the top were left empty.
	return out, dst + 1
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{cols: b.cols, rows: b.rows, cells: make([]core.Color, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// Grid returns a copy of the cells as rows of columns.
func (b *Board) Grid() [][]core.Color {
	grid := make([][]core.Color, b.rows)
	for y := range grid {
		grid[y] = make([]core.Color, b.cols)
		copy(grid[y], b.cells[y*b.cols:(y+1)*b.cols])
	}
	return grid
}

// Filled returns the number of non-empty cells.
func (b *Board) Filled() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}
