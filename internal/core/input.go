package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota

	// Held actions: active for as long as the key is down.
	ActionSteerLeft  // A, Left - steer left on the ground, spin in the air
	ActionSteerRight // D, Right - steer right on the ground, spin in the air
	ActionTuck       // W, Up - wings in, go faster
	ActionSpread     // S, Down - wings out, brake

	// Edge actions: fire once per press.
	ActionTrickFlip      // Space, 1
	ActionTrickFrontFlip // X, 2
	ActionTrickTuck      // C, 3
	ActionTrickSpinLeft  // Z, 4
	ActionTrickSpinRight // V, 5
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionRestart        // R after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSteerLeft:
		return "SteerLeft"
	case ActionSteerRight:
		return "SteerRight"
	case ActionTuck:
		return "Tuck"
	case ActionSpread:
		return "Spread"
	case ActionTrickFlip:
		return "TrickFlip"
	case ActionTrickFrontFlip:
		return "TrickFrontFlip"
	case ActionTrickTuck:
		return "TrickTuck"
	case ActionTrickSpinLeft:
		return "TrickSpinLeft"
	case ActionTrickSpinRight:
		return "TrickSpinRight"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is a continuous one.
// Terminals only deliver key presses, so the platform keeps held actions
// alive for a short window after each press.
func (a Action) Held() bool {
	switch a {
	case ActionSteerLeft, ActionSteerRight, ActionTuck, ActionSpread:
		return true
	default:
		return false
	}
}

// InputFrame is the set of actions active during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Axis folds a pair of opposing actions into -1, 0, or 1.
func (f InputFrame) Axis(neg, pos Action) int {
	v := 0
	if f.Has(neg) {
		v--
	}
	if f.Has(pos) {
		v++
	}
	return v
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
