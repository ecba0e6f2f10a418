package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/penguin-ski/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionSteerLeft, false
	case "d", "right":
		return core.ActionSteerRight, false
	case "w", "up":
		return core.ActionTuck, false
	case "s", "down":
		return core.ActionSpread, false
	case " ", "1":
		return core.ActionTrickFlip, false
	case "x", "2":
		return core.ActionTrickFrontFlip, false
	case "c", "3":
		return core.ActionTrickTuck, false
	case "z", "4":
		return core.ActionTrickSpinLeft, false
	case "v", "5":
		return core.ActionTrickSpinRight, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// opposite pairs held actions that cancel each other.
var opposite = map[core.Action]core.Action{
	core.ActionSteerLeft:  core.ActionSteerRight,
	core.ActionSteerRight: core.ActionSteerLeft,
	core.ActionTuck:       core.ActionSpread,
	core.ActionSpread:     core.ActionTuck,
}

// HeldKeys emulates key-up events, which terminals do not report. A press
// keeps its action held for the hold duration; auto-repeat extends it, and
// pressing the opposite action releases it at once.
type HeldKeys struct {
	hold     time.Duration
	deadline map[core.Action]time.Time
}

// NewHeldKeys creates a tracker. A non-positive hold makes every press last
// exactly one tick.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold:     hold,
		deadline: make(map[core.Action]time.Time),
	}
}

// Press marks a as held from now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if opp, ok := opposite[a]; ok {
		delete(h.deadline, opp)
	}
	h.deadline[a] = now.Add(h.hold)
}

// Apply sets every action still held at now on the frame and forgets the
// expired ones. An action pressed since the last Apply always counts once.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h.deadline {
		frame.Set(a)
		if !now.Before(until) {
			delete(h.deadline, a)
		}
	}
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.deadline)
}
