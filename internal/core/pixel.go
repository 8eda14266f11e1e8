package core

// Pixel is one glyph at a screen position. Pixels are values rebuilt every
// frame and carry no identity across frames.
type Pixel struct {
	Glyph rune
	Pos   ScreenPos
}

// NewPixel creates a pixel.
func NewPixel(glyph rune, pos ScreenPos) Pixel {
	return Pixel{Glyph: glyph, Pos: pos}
}
