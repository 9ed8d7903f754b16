package core

// Action is a discrete command decoded from player input.
type Action int

// Game actions.
const (
	ActionNone Action = iota
	ActionPause
	ActionRestart
	ActionQuit
	ActionToggleBreakdown
	ActionToggleNegatives
)

// InputFrame carries everything the player did since the previous tick:
// discrete actions, pointer movement, fire requests, and level selection.
// Pointer and fire coordinates are in field units, already translated
// from terminal cells by the platform layer.
type InputFrame struct {
	Actions map[Action]bool

	// PointerMoved reports that PointerX/PointerY hold a new aim position.
	PointerMoved bool
	PointerX     float64
	PointerY     float64

	// FirePressed reports a fire request at FireX/FireY.
	FirePressed bool
	FireX       float64
	FireY       float64

	// Level is the requested difficulty level (1-3), or 0 when none
	// was selected this frame.
	Level int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as active in this frame.
func (f *InputFrame) Set(action Action) {
	f.Actions[action] = true
}

// Has reports whether the action is active in this frame.
func (f InputFrame) Has(action Action) bool {
	return f.Actions[action]
}

// Clear resets the frame between ticks, keeping the map allocation.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerMoved = false
	f.FirePressed = false
	f.Level = 0
}
