package app

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tinypix/internal/core"
	"github.com/vovakirdan/tinypix/internal/events"
)

// KeyMapper translates terminal key events to scene actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Map translates a key event to an action. Unbound keys yield ActionNone.
func (km *KeyMapper) Map(k events.Key) core.Action {
	if k.EventKey == nil {
		return core.ActionNone
	}
	return km.MapKey(k.EventKey)
}

// MapKey translates a raw tcell key event to an action.
func (km *KeyMapper) MapKey(ev *tcell.EventKey) core.Action {
	// Global quit keys
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return core.ActionQuit
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyRune:
		return km.mapRune(ev.Rune())
	}
	return core.ActionNone
}

func (km *KeyMapper) mapRune(r rune) core.Action {
	switch unicode.ToLower(r) {
	case 'q':
		return core.ActionQuit
	case 'w', 'k': // vim-style k for up
		return core.ActionUp
	case 's', 'j':
		return core.ActionDown
	case 'a', 'h':
		return core.ActionLeft
	case 'd', 'l':
		return core.ActionRight
	case 'p', ' ':
		return core.ActionPause
	}
	return core.ActionNone
}

// MapToFrame updates an input frame from a key event.
// Only directional actions are recorded; the mapped action is returned so
// callers can react to pause and quit.
func (km *KeyMapper) MapToFrame(k events.Key, frame *core.InputFrame) core.Action {
	action := km.Map(k)
	if dx, dy := action.Delta(); dx != 0 || dy != 0 {
		frame.Set(action)
	}
	return action
}
