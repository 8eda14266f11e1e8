// Package app runs a scene against the event stream: keys become actions,
// ticks advance the scene and render one frame through the camera.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tinypix/internal/core"
	"github.com/vovakirdan/tinypix/internal/events"
	"github.com/vovakirdan/tinypix/internal/registry"
	"github.com/vovakirdan/tinypix/internal/render"
	"github.com/vovakirdan/tinypix/internal/storage"
)

// PauseBanner is drawn in the top-left corner of the viewport while paused.
const PauseBanner = "PAUSED"

// EndReason describes why a run stopped.
type EndReason string

const (
	EndQuit         EndReason = "quit"
	EndStreamClosed EndReason = "stream-closed"
	EndRenderError  EndReason = "render-error"
	EndCancelled    EndReason = "cancelled"
)

// EventSource yields events until it is exhausted. *events.Stream satisfies it.
type EventSource interface {
	Next() (events.Event, bool)
}

// SessionSaver persists a finished run. *storage.Store satisfies it.
type SessionSaver interface {
	SaveSession(rec storage.SessionRecord) (int64, error)
}

// Options wires a run. Scene, Camera, Viewport and Target are required.
type Options struct {
	Scene      registry.Scene
	Runtime    core.RuntimeConfig
	Camera     *core.Camera
	Viewport   *core.Viewport
	Target     render.RenderTarget
	Background rune

	Keys   *KeyMapper
	Saver  SessionSaver
	Logger *log.Logger
}

// Stats summarizes a run.
type Stats struct {
	Ticks     int
	Keys      int
	Frames    int
	Duration  time.Duration
	EndReason EndReason
}

func (o Options) validate() error {
	var errs []error
	if o.Scene == nil {
		errs = append(errs, errors.New("scene is required"))
	}
	if o.Camera == nil {
		errs = append(errs, errors.New("camera is required"))
	}
	if o.Viewport == nil {
		errs = append(errs, errors.New("viewport is required"))
	}
	if o.Target == nil {
		errs = append(errs, errors.New("render target is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("app: invalid options: %w", errors.Join(errs...))
	}
	return nil
}

// Run resets the scene and consumes src until a quit key, the end of the
// stream, a render failure or ctx cancellation. A render failure stops the
// run and is returned wrapped, unless ctx was already cancelled; the other
// endings return a nil error.
//
// Stats are returned in every case and, when a Saver is set, journaled
// best-effort.
func Run(ctx context.Context, src EventSource, opts Options) (Stats, error) {
	if err := opts.validate(); err != nil {
		return Stats{}, err
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyMapper()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Background == 0 {
		opts.Background = ' '
	}

	l := &loop{
		opts:     opts,
		renderer: render.New(opts.Target),
		frame:    core.NewInputFrame(),
	}

	opts.Scene.Reset(opts.Runtime)
	opts.Logger.Info("session started", "scene", opts.Scene.ID(), "fps", opts.Runtime.TickRate, "seed", opts.Runtime.Seed)

	start := time.Now()
	err := l.run(ctx, src)
	l.stats.Duration = time.Since(start)

	opts.Logger.Info("session ended",
		"scene", opts.Scene.ID(),
		"reason", l.stats.EndReason,
		"ticks", l.stats.Ticks,
		"frames", l.stats.Frames,
		"keys", l.stats.Keys,
	)
	l.save()

	return l.stats, err
}

type loop struct {
	opts     Options
	renderer *render.Renderer[render.RenderTarget]
	frame    core.InputFrame
	paused   bool
	stats    Stats
}

func (l *loop) run(ctx context.Context, src EventSource) error {
	for {
		if ctx.Err() != nil {
			l.stats.EndReason = EndCancelled
			return nil
		}

		ev, ok := src.Next()
		if !ok {
			l.stats.EndReason = EndStreamClosed
			return nil
		}

		switch e := ev.(type) {
		case events.Key:
			if l.handleKey(e) {
				l.stats.EndReason = EndQuit
				return nil
			}
		case events.Tick:
			if err := l.handleTick(); err != nil {
				// Cancellation releases the target, so a failure after it is
				// the shutdown itself.
				if ctx.Err() != nil {
					l.opts.Logger.Debug("render after cancel", "err", err)
					l.stats.EndReason = EndCancelled
					return nil
				}
				l.stats.EndReason = EndRenderError
				return fmt.Errorf("app: render frame %d: %w", l.stats.Ticks, err)
			}
		}
	}
}

// handleKey records the key and returns true on a quit request.
func (l *loop) handleKey(k events.Key) bool {
	l.stats.Keys++

	switch l.opts.Keys.MapToFrame(k, &l.frame) {
	case core.ActionQuit:
		return true
	case core.ActionPause:
		l.paused = !l.paused
		l.opts.Logger.Debug("pause toggled", "paused", l.paused)
	}
	return false
}

func (l *loop) handleTick() error {
	l.stats.Ticks++

	if !l.paused {
		l.opts.Scene.Step(l.frame)
	}
	// Clear input for next frame
	l.frame.Clear()

	cam, vp := l.opts.Camera, l.opts.Viewport
	cam.Track(l.opts.Scene.Focus())
	vp.Fill(l.opts.Background)
	l.opts.Scene.Draw(cam, vp)
	if l.paused {
		vp.DrawText(core.NewScreenPos(0, 0), PauseBanner)
	}

	if err := l.renderer.Render(vp); err != nil {
		return err
	}
	l.stats.Frames++
	return nil
}

func (l *loop) save() {
	if l.opts.Saver == nil {
		return
	}
	rec := storage.SessionRecord{
		SceneID:   l.opts.Scene.ID(),
		FPS:       l.opts.Runtime.TickRate,
		Ticks:     l.stats.Ticks,
		Keys:      l.stats.Keys,
		Frames:    l.stats.Frames,
		Duration:  l.stats.Duration,
		EndReason: string(l.stats.EndReason),
	}
	// Best-effort save, the run result stands regardless
	if _, err := l.opts.Saver.SaveSession(rec); err != nil {
		l.opts.Logger.Warn("cannot save session", "err", err)
	}
}
