package core

// Action represents a semantic game command, abstracted from physical keys.
// Mapping keys to actions is the platform's job; games only see actions.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDropStart
	ActionSoftDropStop
	ActionRotateCW
	ActionRotateCCW
	ActionHardDrop
	ActionPause   // toggles pause
	ActionRestart // only meaningful after game over
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDropStart:
		return "SoftDropStart"
	case ActionSoftDropStop:
		return "SoftDropStop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the commands received during one frame.
// Commands keep their arrival order and repeats, so two quick presses of the
// same key move a piece twice.
type InputFrame struct {
	queue []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.queue = append(f.queue, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, q := range f.queue {
		if q == a {
			return true
		}
	}
	return false
}

// Actions returns the queued actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.queue
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.queue)
}

// Clear resets the frame for reuse, keeping its backing storage.
func (f *InputFrame) Clear() {
	f.queue = f.queue[:0]
}

// Clone creates an independent copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{queue: make([]Action, len(f.queue))}
	copy(clone.queue, f.queue)
	return clone
}
