package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, h - shift piece left
	ActionRight            // Right arrow, l - shift piece right
	ActionRotate           // Up arrow, x, z - rotate clockwise
	ActionSoftDrop         // Down arrow, j - one row down
	ActionHardDrop         // Space - drop to the floor and lock
	ActionRestart          // R - new session after game over
	ActionQuit             // Q, Ctrl+C - end the loop
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputQueue is a FIFO of pending actions.
// The platform pushes one action per key press and the game loop polls at
// most one per tick, so quick key sequences are neither merged nor reordered.
type InputQueue struct {
	pending []Action
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push appends an action. ActionNone is ignored.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.pending = append(q.pending, a)
}

// Poll removes and returns the oldest action.
// Returns ActionNone when nothing is pending; it never blocks.
func (q *InputQueue) Poll() Action {
	if len(q.pending) == 0 {
		return ActionNone
	}
	a := q.pending[0]
	q.pending = q.pending[1:]
	return a
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// Clear drops all pending actions.
func (q *InputQueue) Clear() {
	q.pending = q.pending[:0]
}
