package blocks

import "errors"

// Construction-time errors. Gameplay itself never fails: illegal moves are
// simply rejected.
var (
	ErrInvalidDimensions = errors.New("blocks: invalid board dimensions")
	ErrInvalidTiming     = errors.New("blocks: invalid timing")
	ErrInvalidShape      = errors.New("blocks: invalid shape definition")
)
