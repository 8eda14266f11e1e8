package core

// Viewport is the screen-space region that receives projected pixels.
//
// Draw calls take camera-relative offsets and add the viewport's origin.
// Offsets outside the viewport's size are passed through unchanged; callers
// that want clipping check Contains first. Pixels are kept in insertion
// order, so a later draw at the same position paints over an earlier one.
type Viewport struct {
	box    BoundingBox
	pixels []Pixel
}

// NewViewport creates a viewport anchored at pos.
func NewViewport(pos ScreenPos, size ScreenSize) *Viewport {
	return &Viewport{
		box: NewBoundingBox(pos.X, pos.Y, size.W, size.H),
	}
}

// BoundingBox returns the viewport's screen-space box.
func (v *Viewport) BoundingBox() BoundingBox {
	return v.box
}

// Origin returns the screen position of the viewport's top-left cell.
func (v *Viewport) Origin() ScreenPos {
	return ScreenPos{X: v.box.MinX(), Y: v.box.MinY()}
}

// Size returns the viewport's extent.
func (v *Viewport) Size() ScreenSize {
	return ScreenSize{W: v.box.Width(), H: v.box.Height()}
}

// Contains reports whether a camera-relative offset falls inside the viewport.
func (v *Viewport) Contains(offset ScreenPos) bool {
	return offset.X >= 0 && offset.X < v.box.Width() &&
		offset.Y >= 0 && offset.Y < v.box.Height()
}

// DrawPixel queues p, whose Pos is a camera-relative offset.
func (v *Viewport) DrawPixel(p Pixel) {
	v.pixels = append(v.pixels, Pixel{
		Glyph: p.Glyph,
		Pos:   v.Origin().Add(p.Pos),
	})
}

// DrawText queues one pixel per rune of text, left to right from offset.
func (v *Viewport) DrawText(offset ScreenPos, text string) {
	i := 0
	for _, r := range text {
		v.DrawPixel(Pixel{Glyph: r, Pos: ScreenPos{X: offset.X + i, Y: offset.Y}})
		i++
	}
}

// Fill queues glyph for every cell of the viewport, row by row.
func (v *Viewport) Fill(glyph rune) {
	w, h := v.box.Width(), v.box.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v.DrawPixel(Pixel{Glyph: glyph, Pos: ScreenPos{X: x, Y: y}})
		}
	}
}

// Len returns the number of pixels queued for this frame.
func (v *Viewport) Len() int {
	return len(v.pixels)
}

// Pixels drains the queued pixels in insertion order. The viewport is empty
// afterwards, so each frame starts from nothing.
func (v *Viewport) Pixels() []Pixel {
	out := v.pixels
	v.pixels = nil
	if out == nil {
		return []Pixel{}
	}
	return out
}
