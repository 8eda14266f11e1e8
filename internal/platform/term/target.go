// Package term is the terminal backend: a tcell screen acquired in raw mode
// with a hidden cursor, used both as a render target and as the raw input
// source for the event stream.
package term

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tinypix/internal/core"
)

// ErrClosed is returned when rendering to a released target.
var ErrClosed = errors.New("term: target is closed")

// Target paints pixels onto a tcell screen.
type Target struct {
	screen tcell.Screen

	mu     sync.Mutex
	closed bool
	once   sync.Once
}

// Open acquires the process terminal. The caller must Close the target on
// every exit path to restore the terminal.
func Open() (*Target, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: cannot create screen: %w", err)
	}
	return New(screen)
}

// New acquires screen: raw mode and alternate buffer via Init, then hides the
// cursor and clears.
func New(screen tcell.Screen) (*Target, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: cannot initialize screen: %w", err)
	}

	screen.DisableMouse()
	screen.HideCursor()
	screen.Clear()
	screen.Show()

	return &Target{screen: screen}, nil
}

// Render moves to each pixel's position and writes its glyph, in order, then
// flushes. Cells outside the terminal are ignored by tcell.
func (t *Target) Render(pixels []core.Pixel) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	for _, p := range pixels {
		t.screen.SetContent(p.Pos.X, p.Pos.Y, p.Glyph, nil, tcell.StyleDefault)
	}
	t.screen.Show()
	return nil
}

// PollEvent blocks for the next raw input event. It returns nil once the
// target is closed, which ends the event stream's key producer.
func (t *Target) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Size returns the current terminal size.
func (t *Target) Size() core.ScreenSize {
	w, h := t.screen.Size()
	return core.NewScreenSize(w, h)
}

// Close restores the terminal. Safe to call multiple times.
func (t *Target) Close() {
	t.once.Do(func() {
		t.mu.Lock()
		t.closed = true
		t.mu.Unlock()
		t.screen.Fini()
	})
}
