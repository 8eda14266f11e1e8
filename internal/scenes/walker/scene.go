// Package walker is a scene where a player walks across a seeded field of
// landmarks. Walls ('#') block movement; the camera follows the player.
package walker

import (
	"math/rand"

	"github.com/vovakirdan/tinypix/internal/core"
	"github.com/vovakirdan/tinypix/internal/registry"
)

const (
	glyphPlayer = '@'
	glyphWall   = '#'
	glyphBorder = '+'

	// One landmark per this many world cells.
	landmarkDensity = 40
)

var landmarkGlyphs = []rune{'*', '~', '^', '.', glyphWall}

// Scene implements the walker scene.
type Scene struct {
	rng       *rand.Rand
	world     core.Rect
	landmarks map[core.WorldPos]rune
	player    core.WorldPos
	steps     int
}

// New creates an empty walker scene. Call Reset before use.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register("walker", func() registry.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return "walker" }

// Title returns the display name.
func (s *Scene) Title() string { return "Walker" }

// Reset scatters landmarks and places the player at the world center.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	w, h := core.Max(cfg.World.W, 3), core.Max(cfg.World.H, 3)
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.world = core.NewRect(0, 0, w, h)
	s.landmarks = make(map[core.WorldPos]rune)
	s.player = core.NewWorldPos(w/2, h/2)
	s.steps = 0

	n := (w * h) / landmarkDensity
	for i := 0; i < n; i++ {
		p := core.NewWorldPos(1+s.rng.Intn(w-2), 1+s.rng.Intn(h-2))
		if p == s.player {
			continue
		}
		s.landmarks[p] = landmarkGlyphs[s.rng.Intn(len(landmarkGlyphs))]
	}
}

// Step moves the player one cell per tick in the requested direction.
func (s *Scene) Step(in core.InputFrame) {
	dx, dy := in.Delta()
	if dx == 0 && dy == 0 {
		return
	}
	next := s.player.Add(dx, dy)
	if s.blocked(next) {
		// Try sliding along one axis when a diagonal is blocked.
		switch {
		case dx != 0 && !s.blocked(s.player.Add(dx, 0)):
			next = s.player.Add(dx, 0)
		case dy != 0 && !s.blocked(s.player.Add(0, dy)):
			next = s.player.Add(0, dy)
		default:
			return
		}
	}
	s.player = next
	s.steps++
}

func (s *Scene) blocked(p core.WorldPos) bool {
	if s.onBorder(p) || !s.world.Contains(p.X, p.Y) {
		return true
	}
	return s.landmarks[p] == glyphWall
}

func (s *Scene) onBorder(p core.WorldPos) bool {
	return p.X == s.world.X || p.Y == s.world.Y ||
		p.X == s.world.Right()-1 || p.Y == s.world.Bottom()-1
}

// Focus returns the player position.
func (s *Scene) Focus() core.WorldPos {
	return s.player
}

// Player returns the player position.
func (s *Scene) Player() core.WorldPos {
	return s.player
}

// Steps returns how many moves the player has made since Reset.
func (s *Scene) Steps() int {
	return s.steps
}

// GlyphAt returns the static glyph at p, or 0 for empty ground.
func (s *Scene) GlyphAt(p core.WorldPos) rune {
	if !s.world.Contains(p.X, p.Y) {
		return 0
	}
	if s.onBorder(p) {
		return glyphBorder
	}
	return s.landmarks[p]
}

// Draw renders the world cells the camera overlaps, then the player.
// Offsets that fall outside the viewport are skipped.
func (s *Scene) Draw(cam *core.Camera, vp *core.Viewport) {
	box := cam.BoundingBox()
	view := core.NewRect(box.MinX(), box.MinY(), box.Width(), box.Height())
	if s.world.Intersects(view) {
		x0, x1 := core.Max(view.X, s.world.X), core.Min(view.Right(), s.world.Right())
		y0, y1 := core.Max(view.Y, s.world.Y), core.Min(view.Bottom(), s.world.Bottom())
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				p := core.NewWorldPos(x, y)
				if g := s.GlyphAt(p); g != 0 {
					drawClipped(cam, vp, g, p)
				}
			}
		}
	}
	if cam.Visible(s.player) {
		drawClipped(cam, vp, glyphPlayer, s.player)
	}
}

func drawClipped(cam *core.Camera, vp *core.Viewport, g rune, p core.WorldPos) {
	if off := cam.ToScreen(p); vp.Contains(off) {
		vp.DrawPixel(core.NewPixel(g, off))
	}
}
