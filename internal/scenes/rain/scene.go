// Package rain is a scene of glyph drops falling through a fixed world while a
// cursor roams freely. The camera follows the cursor.
package rain

import (
	"math/rand"

	"github.com/vovakirdan/tinypix/internal/core"
	"github.com/vovakirdan/tinypix/internal/registry"
)

const (
	glyphCursor = '+'
	glyphGround = '_'

	// One drop per this many world columns.
	dropSpacing = 3
)

var dropGlyphs = []rune{'|', '\'', '.', ':'}

type drop struct {
	pos   core.WorldPos
	glyph rune
}

// Scene implements the rain scene.
type Scene struct {
	rng    *rand.Rand
	world  core.WorldSize
	drops  []drop
	cursor core.WorldPos
	ticks  int
	landed int
}

// New creates an empty rain scene. Call Reset before use.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register("rain", func() registry.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return "rain" }

// Title returns the display name.
func (s *Scene) Title() string { return "Rain" }

// Reset seeds the drops at random heights and centers the cursor.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.world = core.NewWorldSize(core.Max(cfg.World.W, 1), core.Max(cfg.World.H, 2))
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.cursor = core.NewWorldPos(s.world.W/2, s.world.H/2)
	s.ticks = 0
	s.landed = 0

	n := core.Max(s.world.W/dropSpacing, 1)
	s.drops = make([]drop, n)
	for i := range s.drops {
		s.drops[i] = s.spawn(s.rng.Intn(s.groundY()))
	}
}

func (s *Scene) groundY() int {
	return s.world.H - 1
}

func (s *Scene) spawn(y int) drop {
	return drop{
		pos:   core.NewWorldPos(s.rng.Intn(s.world.W), y),
		glyph: dropGlyphs[s.rng.Intn(len(dropGlyphs))],
	}
}

// Step advances every drop one row and moves the cursor. Drops reaching the
// ground respawn at the top in a new column.
func (s *Scene) Step(in core.InputFrame) {
	s.ticks++
	for i := range s.drops {
		next := s.drops[i].pos.Add(0, 1)
		if next.Y >= s.groundY() {
			s.drops[i] = s.spawn(0)
			s.landed++
			continue
		}
		s.drops[i].pos = next
	}

	dx, dy := in.Delta()
	s.cursor = core.NewWorldPos(
		core.Clamp(s.cursor.X+dx, 0, s.world.W-1),
		core.Clamp(s.cursor.Y+dy, 0, s.groundY()-1),
	)
}

// Focus returns the cursor position.
func (s *Scene) Focus() core.WorldPos {
	return s.cursor
}

// Cursor returns the cursor position.
func (s *Scene) Cursor() core.WorldPos {
	return s.cursor
}

// Landed returns how many drops have hit the ground since Reset.
func (s *Scene) Landed() int {
	return s.landed
}

// Drops returns the current drop positions in spawn order.
func (s *Scene) Drops() []core.WorldPos {
	out := make([]core.WorldPos, len(s.drops))
	for i, d := range s.drops {
		out[i] = d.pos
	}
	return out
}

// Draw renders the ground row, the drops, then the cursor. Offsets that fall
// outside the viewport are skipped.
func (s *Scene) Draw(cam *core.Camera, vp *core.Viewport) {
	draw := func(g rune, p core.WorldPos) {
		if off := cam.ToScreen(p); vp.Contains(off) {
			vp.DrawPixel(core.NewPixel(g, off))
		}
	}

	box := cam.BoundingBox()
	gy := s.groundY()
	if gy >= box.MinY() && gy < box.MaxY() {
		for x := core.Max(box.MinX(), 0); x < core.Min(box.MaxX(), s.world.W); x++ {
			draw(glyphGround, core.NewWorldPos(x, gy))
		}
	}
	for _, d := range s.drops {
		if cam.Visible(d.pos) {
			draw(d.glyph, d.pos)
		}
	}
	if cam.Visible(s.cursor) {
		draw(glyphCursor, s.cursor)
	}
}
