package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionUp             // W, Up arrow - alias for jump
	ActionDown           // S, Down arrow - alias for crouch
	ActionJump           // Space - jump
	ActionFire           // F, J - throw a fireball
	ActionCrouch         // C - crouch
	ActionConfirm        // Enter - start from the title screen
	ActionRestart        // R - restart after win or game over
	ActionPause          // P, Escape - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionCrouch:
		return "Crouch"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a lower-case action name to an Action.
func ParseAction(name string) (Action, bool) {
	for a := ActionLeft; a <= ActionQuit; a++ {
		if lower(a.String()) == name {
			return a, true
		}
	}
	return ActionNone, false
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Continuous reports whether the action has "currently held" semantics.
// The rest are one-shot commands delivered once per press.
func (a Action) Continuous() bool {
	switch a {
	case ActionLeft, ActionRight, ActionUp, ActionDown, ActionJump, ActionFire, ActionCrouch:
		return true
	default:
		return false
	}
}

// InputFrame is the input snapshot for one tick.
// Reading it has no side effects, so it is safe to query many times per tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
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
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// HeldInput turns a stream of key presses into held-key snapshots.
//
// Terminals report presses and auto-repeats but no releases, so a continuous
// action stays held for Window after its most recent press. One-shot actions
// are queued and handed out by exactly one Frame call.
type HeldInput struct {
	Window  time.Duration
	lastHit map[Action]time.Duration
	pending map[Action]bool
}

// NewHeldInput creates a tracker with the given hold window.
func NewHeldInput(window time.Duration) *HeldInput {
	return &HeldInput{
		Window:  window,
		lastHit: make(map[Action]time.Duration),
		pending: make(map[Action]bool),
	}
}

// Press records a key press for the action at time now.
func (h *HeldInput) Press(a Action, now time.Duration) {
	if a == ActionNone {
		return
	}
	if a.Continuous() {
		h.lastHit[a] = now
		return
	}
	h.pending[a] = true
}

// Release drops a continuous action immediately.
func (h *HeldInput) Release(a Action) {
	delete(h.lastHit, a)
}

// Frame builds the snapshot for time now and consumes pending one-shot actions.
func (h *HeldInput) Frame(now time.Duration) InputFrame {
	f := NewInputFrame()
	for a, t := range h.lastHit {
		if now-t <= h.Window {
			f.Set(a)
		} else {
			delete(h.lastHit, a)
		}
	}
	for a := range h.pending {
		f.Set(a)
		delete(h.pending, a)
	}
	return f
}
