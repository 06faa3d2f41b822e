package blocks

import (
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// PieceSnapshot describes a piece by kind, orientation and position.
type PieceSnapshot struct {
	Kind   Kind
	X, Y   int
	Matrix string // '#' filled, '.' empty, rows separated by newlines
}

// Snapshot captures the complete game state for determinism testing and
// screenshots.
type Snapshot struct {
	Tick     uint64
	Locks    int
	Status   Status
	Score    int
	Level    int
	Lines    int
	Interval time.Duration
	SoftDrop bool
	TooSmall bool

	Current  PieceSnapshot
	Next     PieceSnapshot
	GhostRow int
	Bag      []Kind // remaining kinds in draw order
	Board    [][]core.Color
}

func snapshotPiece(p Piece) PieceSnapshot {
	return PieceSnapshot{
		Kind:   p.Kind(),
		X:      p.X,
		Y:      p.Y,
		Matrix: p.Shape.Matrix.String(),
	}
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.ticks,
		Locks:    g.locks,
		Status:   g.status,
		Score:    g.progress.Score,
		Level:    g.progress.Level,
		Lines:    g.progress.Lines,
		Interval: g.progress.Interval,
		SoftDrop: g.softDrop,
		TooSmall: g.tooSmall,
		Current:  snapshotPiece(g.current),
		Next:     snapshotPiece(g.next),
		GhostRow: g.GhostRow(),
		Bag:      g.bag.Remaining(),
		Board:    g.board.Grid(),
	}
}
