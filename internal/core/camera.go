package core

// Camera is a movable window into world space. It converts world positions
// into offsets relative to its minimum corner; placing those offsets on the
// physical screen is the Viewport's job.
type Camera struct {
	box BoundingBox
}

// NewCamera creates a camera whose bounding box has its minimum corner at pos.
func NewCamera(pos WorldPos, size WorldSize) *Camera {
	return &Camera{box: NewBoundingBox(pos.X, pos.Y, size.W, size.H)}
}

// BoundingBox returns the camera's world-space box.
func (c *Camera) BoundingBox() BoundingBox {
	return c.box
}

// Size returns the camera's world-space extent.
func (c *Camera) Size() WorldSize {
	return WorldSize{W: c.box.Width(), H: c.box.Height()}
}

// ToScreen returns the offset of p from the camera's minimum corner.
// No clipping is done: positions outside the box yield negative or
// out-of-range offsets.
func (c *Camera) ToScreen(p WorldPos) ScreenPos {
	return ScreenPos{
		X: p.X - c.box.MinX(),
		Y: p.Y - c.box.MinY(),
	}
}

// Visible reports whether p lies inside the camera's box.
func (c *Camera) Visible(p WorldPos) bool {
	return c.box.Contains(p.X, p.Y)
}

// MoveTo places the camera's minimum corner at pos. The size is unchanged.
func (c *Camera) MoveTo(pos WorldPos) {
	c.box = c.box.MoveTo(pos.X, pos.Y)
}

// MoveBy shifts the camera by (dx, dy).
func (c *Camera) MoveBy(dx, dy int) {
	c.box = c.box.Translate(dx, dy)
}

// Track centers the camera on target. For even sizes the target lands on the
// cell right of and below the geometric center.
func (c *Camera) Track(target WorldPos) {
	c.MoveTo(WorldPos{
		X: target.X - c.box.Width()/2,
		Y: target.Y - c.box.Height()/2,
	})
}
