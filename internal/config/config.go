// Package config provides YAML-based configuration loading for tinypix.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tinypix/internal/core"
)

// Config is the full application configuration.
type Config struct {
	FPS        int           `yaml:"fps"`
	Scene      string        `yaml:"scene"`
	Seed       int64         `yaml:"seed"` // 0 = random based on time
	World      SizeConfig    `yaml:"world"`
	Camera     RectConfig    `yaml:"camera"`
	Viewport   RectConfig    `yaml:"viewport"`
	Background string        `yaml:"background"` // Glyph painted under each frame
	Storage    StorageConfig `yaml:"storage"`
	Log        LogConfig     `yaml:"log"`
}

// SizeConfig is a width/height pair.
type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RectConfig is a position plus size. A zero width or height means "derive it"
// (from the terminal for the viewport, from the viewport for the camera).
type RectConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StorageConfig controls the session journal.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig controls logging. An empty File discards logs, since the
// terminal is in raw mode while running.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// Validate checks values that would break the renderer or event stream.
func (c Config) Validate() error {
	var errs []error
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.World.Width < 0 || c.World.Height < 0 {
		errs = append(errs, fmt.Errorf("world size must be non-negative, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.Camera.Width < 0 || c.Camera.Height < 0 {
		errs = append(errs, fmt.Errorf("camera size must be non-negative, got %dx%d", c.Camera.Width, c.Camera.Height))
	}
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		errs = append(errs, fmt.Errorf("viewport size must be non-negative, got %dx%d", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Viewport.X < 0 || c.Viewport.Y < 0 {
		errs = append(errs, fmt.Errorf("viewport origin must be on screen, got (%d, %d)", c.Viewport.X, c.Viewport.Y))
	}
	if utf8.RuneCountInString(c.Background) > 1 {
		errs = append(errs, fmt.Errorf("background must be a single glyph, got %q", c.Background))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// BackgroundGlyph returns the frame background, a space when unset.
func (c Config) BackgroundGlyph() rune {
	r, _ := utf8.DecodeRuneInString(c.Background)
	if r == utf8.RuneError {
		return ' '
	}
	return r
}

// ViewportRect resolves the viewport against the terminal size. A zero width
// or height extends the viewport to the terminal's edge.
func (c Config) ViewportRect(terminal core.ScreenSize) (core.ScreenPos, core.ScreenSize) {
	pos := core.NewScreenPos(c.Viewport.X, c.Viewport.Y)
	w, h := c.Viewport.Width, c.Viewport.Height
	if w == 0 {
		w = terminal.W - pos.X
	}
	if h == 0 {
		h = terminal.H - pos.Y
	}
	return pos, core.NewScreenSize(w, h)
}

// CameraRect resolves the camera. A zero width or height matches the
// viewport so one world cell maps to one screen cell.
func (c Config) CameraRect(viewport core.ScreenSize) (core.WorldPos, core.WorldSize) {
	w, h := c.Camera.Width, c.Camera.Height
	if w == 0 {
		w = viewport.W
	}
	if h == 0 {
		h = viewport.H
	}
	return core.NewWorldPos(c.Camera.X, c.Camera.Y), core.NewWorldSize(w, h)
}

// WorldSize returns the configured world extent.
func (c Config) WorldSize() core.WorldSize {
	return core.NewWorldSize(c.World.Width, c.World.Height)
}
