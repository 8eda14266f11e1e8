package render

import (
	"sync"

	"github.com/vovakirdan/tinypix/internal/core"
)

// CaptureTarget records every batch it receives.
type CaptureTarget struct {
	mu      sync.Mutex
	batches [][]core.Pixel
	err     error
}

// NewCaptureTarget creates an empty capturing target.
func NewCaptureTarget() *CaptureTarget {
	return &CaptureTarget{}
}

// FailWith makes subsequent Render calls return err without recording.
func (c *CaptureTarget) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

// Render records a copy of pixels.
func (c *CaptureTarget) Render(pixels []core.Pixel) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return c.err
	}
	batch := make([]core.Pixel, len(pixels))
	copy(batch, pixels)
	c.batches = append(c.batches, batch)
	return nil
}

// Frames returns how many batches were rendered.
func (c *CaptureTarget) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.batches)
}

// Last returns the most recent batch, or nil if nothing was rendered.
func (c *CaptureTarget) Last() []core.Pixel {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.batches) == 0 {
		return nil
	}
	return c.batches[len(c.batches)-1]
}

// ScreenTarget paints pixels into a core.Screen. Cells outside the screen
// are dropped.
type ScreenTarget struct {
	screen *core.Screen
}

// NewScreenTarget creates a target backed by a blank screen of the given size.
func NewScreenTarget(size core.ScreenSize) *ScreenTarget {
	return &ScreenTarget{screen: core.NewScreen(size)}
}

// Render paints pixels over the current contents.
func (s *ScreenTarget) Render(pixels []core.Pixel) error {
	s.screen.Paint(pixels)
	return nil
}

// Screen returns the backing buffer.
func (s *ScreenTarget) Screen() *core.Screen {
	return s.screen
}

// String returns the screen contents, one line per row.
func (s *ScreenTarget) String() string {
	return s.screen.String()
}
