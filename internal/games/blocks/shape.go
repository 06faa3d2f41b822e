package blocks

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Kind identifies one of the seven canonical shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of shape kinds, and therefore the bag size.
const KindCount = 7

// Kinds returns all shape kinds in canonical order.
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

var kindNames = [KindCount]string{"I", "J", "L", "O", "S", "T", "Z"}

// Matrix is an immutable fixed-stride boolean grid holding one orientation
// of a shape. Width and height are those of the bounding box.
type Matrix struct {
	w, h  int
	cells []bool // row-major, stride = w
}

// ParseMatrix builds a matrix from rows of '#' (filled) and '.' (empty).
// Every row must have the same width and at least one cell must be filled.
func ParseMatrix(rows ...string) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, fmt.Errorf("%w: no rows", ErrInvalidShape)
	}

	w := len(rows[0])
	if w == 0 {
		return Matrix{}, fmt.Errorf("%w: empty row", ErrInvalidShape)
	}

	m := Matrix{w: w, h: len(rows), cells: make([]bool, w*len(rows))}
	filled := 0
	for y, row := range rows {
		if len(row) != w {
			return Matrix{}, fmt.Errorf("%w: row %d has width %d, expected %d", ErrInvalidShape, y, len(row), w)
		}
		for x, ch := range row {
			switch ch {
			case '#':
				m.cells[y*w+x] = true
				filled++
			case '.':
			default:
				return Matrix{}, fmt.Errorf("%w: unexpected %q at row %d", ErrInvalidShape, ch, y)
			}
		}
	}

	if filled == 0 {
		return Matrix{}, fmt.Errorf("%w: no filled cells", ErrInvalidShape)
	}
	return m, nil
}

// Width returns the bounding-box width.
func (m Matrix) Width() int { return m.w }

// Height returns the bounding-box height.
func (m Matrix) Height() int { return m.h }

// Filled reports whether (x, y) is a filled cell. Out-of-range is empty.
func (m Matrix) Filled(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.cells[y*m.w+x]
}

// Count returns the number of filled cells.
func (m Matrix) Count() int {
	n := 0
	for _, c := range m.cells {
		if c {
			n++
		}
	}
	return n
}

// Cells returns the filled cells relative to the top-left of the bounding box,
// in row-major order.
func (m Matrix) Cells() []core.Point {
	pts := make([]core.Point, 0, 4)
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.cells[y*m.w+x] {
				pts = append(pts, core.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// RotateCW returns the matrix turned 90 degrees clockwise: the transpose with
// its rows reversed. Width and height swap.
func (m Matrix) RotateCW() Matrix {
	r := Matrix{w: m.h, h: m.w, cells: make([]bool, len(m.cells))}
	// Source (x, y) lands on (h-1-y, x).
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			r.cells[x*r.w+(m.h-1-y)] = m.cells[y*m.w+x]
		}
	}
	return r
}

// Equal reports whether two matrices have the same size and bit pattern.
func (m Matrix) Equal(o Matrix) bool {
	if m.w != o.w || m.h != o.h {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the matrix in the ParseMatrix format, rows joined by '\n'.
func (m Matrix) String() string {
	var sb strings.Builder
	for y := 0; y < m.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < m.w; x++ {
			if m.cells[y*m.w+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Shape is a kind in a particular orientation, with its display color.
type Shape struct {
	Kind   Kind
	Matrix Matrix
	Color  core.Color
}

// RotateCW returns the shape turned 90 degrees clockwise.
func (s Shape) RotateCW() Shape {
	return Shape{Kind: s.Kind, Matrix: s.Matrix.RotateCW(), Color: s.Color}
}

type shapeDef struct {
	rows  []string
	color core.Color
}

// Spawn orientations and colors.
var shapeDefs = [KindCount]shapeDef{
	KindI: {[]string{"####"}, core.ColorCyan},
	KindJ: {[]string{"#..", "###"}, core.ColorBlue},
	KindL: {[]string{"..#", "###"}, core.ColorOrange},
	KindO: {[]string{"##", "##"}, core.ColorYellow},
	KindS: {[]string{".##", "##."}, core.ColorGreen},
	KindT: {[]string{".#.", "###"}, core.ColorMagenta},
	KindZ: {[]string{"##.", ".##"}, core.ColorRed},
}

var spawnShapes [KindCount]Shape

func init() {
	for k, def := range shapeDefs {
		m, err := ParseMatrix(def.rows...)
		if err != nil {
			panic(fmt.Sprintf("blocks: shape %s: %v", Kind(k), err))
		}
		spawnShapes[k] = Shape{Kind: Kind(k), Matrix: m, Color: def.color}
	}
}

// NewShape returns the spawn orientation of the given kind.
func NewShape(k Kind) Shape {
	if int(k) >= KindCount {
		panic(fmt.Sprintf("blocks: unknown shape kind %d", k))
	}
	return spawnShapes[k]
}

// maxSpawnSize returns the widest and tallest spawn orientation.
func maxSpawnSize() (w, h int) {
	for _, s := range spawnShapes {
		w = max(w, s.Matrix.Width())
		h = max(h, s.Matrix.Height())
	}
	return w, h
}
