package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cactusflap/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
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
	case "ctrl+s":
		return core.ActionScreenshot, false
	case " ", "up", "w":
		return core.ActionFlap, false
	case "enter":
		return core.ActionStart, false
	}

	return core.ActionNone, false
}

// MapMouse turns a left click into Start, like clicking the start button.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionStart
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Only game actions are recorded. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action == core.ActionFlap || action == core.ActionStart {
		frame.Set(action)
	}
	return isQuit
}
