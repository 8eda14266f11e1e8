// Package events merges a fixed-rate tick generator and raw keyboard input
// into one ordered stream.
package events

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Event is either a Tick or a Key.
type Event interface {
	event()
}

// Tick is emitted once per frame interval.
type Tick struct {
	At time.Time
}

func (Tick) event() {}

// Key wraps a keyboard event read from the terminal.
type Key struct {
	*tcell.EventKey
}

func (Key) event() {}

// String returns the key's display name, e.g. "Rune[q]" or "Up".
func (k Key) String() string {
	if k.EventKey == nil {
		return ""
	}
	return k.Name()
}

// InputSource is a blocking reader of raw terminal events.
// tcell.Screen satisfies it; PollEvent returns nil once the source is
// finalized.
type InputSource interface {
	PollEvent() tcell.Event
}
