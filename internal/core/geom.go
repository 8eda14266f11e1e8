// Package core provides the geometry, camera and viewport types of the
// renderer. It has no terminal dependencies so projection logic stays pure
// and testable.
package core

// WorldPos is a position in world space.
type WorldPos struct {
	X, Y int
}

// NewWorldPos creates a world position.
func NewWorldPos(x, y int) WorldPos {
	return WorldPos{X: x, Y: y}
}

// Add returns the position translated by (dx, dy).
func (p WorldPos) Add(dx, dy int) WorldPos {
	return WorldPos{X: p.X + dx, Y: p.Y + dy}
}

// WorldSize is an extent in world space.
type WorldSize struct {
	W, H int
}

// NewWorldSize creates a world size. Negative components are clamped to zero.
func NewWorldSize(w, h int) WorldSize {
	return WorldSize{W: Max(w, 0), H: Max(h, 0)}
}

// ScreenPos is a terminal column/row. Camera offsets may be negative before
// the viewport places them.
type ScreenPos struct {
	X, Y int
}

// NewScreenPos creates a screen position.
func NewScreenPos(x, y int) ScreenPos {
	return ScreenPos{X: x, Y: y}
}

// Add returns the sum of two screen positions.
func (p ScreenPos) Add(o ScreenPos) ScreenPos {
	return ScreenPos{X: p.X + o.X, Y: p.Y + o.Y}
}

// ScreenSize is an extent in screen cells.
type ScreenSize struct {
	W, H int
}

// NewScreenSize creates a screen size. Negative components are clamped to zero.
func NewScreenSize(w, h int) ScreenSize {
	return ScreenSize{W: Max(w, 0), H: Max(h, 0)}
}

// Point is a bare coordinate pair used for box corners.
type Point struct {
	X, Y int
}

// BoundingBox is an axis-aligned box. Min is inclusive, Max is exclusive.
// The same type serves world space (Camera) and screen space (Viewport).
type BoundingBox struct {
	Min, Max Point
}

// NewBoundingBox builds a box whose minimum corner is (x, y).
func NewBoundingBox(x, y, w, h int) BoundingBox {
	return BoundingBox{
		Min: Point{X: x, Y: y},
		Max: Point{X: x + Max(w, 0), Y: y + Max(h, 0)},
	}
}

// MinX returns the left edge.
func (b BoundingBox) MinX() int { return b.Min.X }

// MinY returns the top edge.
func (b BoundingBox) MinY() int { return b.Min.Y }

// MaxX returns the exclusive right edge.
func (b BoundingBox) MaxX() int { return b.Max.X }

// MaxY returns the exclusive bottom edge.
func (b BoundingBox) MaxY() int { return b.Max.Y }

// Width returns the horizontal extent.
func (b BoundingBox) Width() int { return b.Max.X - b.Min.X }

// Height returns the vertical extent.
func (b BoundingBox) Height() int { return b.Max.Y - b.Min.Y }

// Contains returns true if the point (x, y) is inside the box.
func (b BoundingBox) Contains(x, y int) bool {
	return x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y
}

// MoveTo returns the box with its minimum corner at (x, y), keeping its size.
func (b BoundingBox) MoveTo(x, y int) BoundingBox {
	return NewBoundingBox(x, y, b.Width(), b.Height())
}

// Translate returns the box shifted by (dx, dy).
func (b BoundingBox) Translate(dx, dy int) BoundingBox {
	return b.MoveTo(b.Min.X+dx, b.Min.Y+dy)
}

// Rect is an axis-aligned rectangle used by scenes for area checks.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
