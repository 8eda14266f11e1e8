// Package render pushes a viewport's pixels into a pluggable target.
package render

import (
	"github.com/vovakirdan/tinypix/internal/core"
)

// RenderTarget is anything pixels can be painted onto: the terminal, an
// in-memory screen, or a capturing test sink. Pixels must be painted in
// order so the last one at a position wins.
type RenderTarget interface {
	Render(pixels []core.Pixel) error
}

// Renderer owns a target and feeds it one viewport frame at a time.
type Renderer[T RenderTarget] struct {
	target T
}

// New creates a renderer for the given target.
func New[T RenderTarget](target T) *Renderer[T] {
	return &Renderer[T]{target: target}
}

// Target returns the renderer's target.
func (r *Renderer[T]) Target() T {
	return r.target
}

// Render drains vp and hands its pixels to the target.
// A target error aborts this frame only; the viewport is already drained.
func (r *Renderer[T]) Render(vp *core.Viewport) error {
	return r.target.Render(vp.Pixels())
}
