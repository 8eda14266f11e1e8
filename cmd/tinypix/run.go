package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/tinypix/internal/app"
	"github.com/vovakirdan/tinypix/internal/core"
	"github.com/vovakirdan/tinypix/internal/events"
	"github.com/vovakirdan/tinypix/internal/platform/term"
	"github.com/vovakirdan/tinypix/internal/registry"
	"github.com/vovakirdan/tinypix/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run [scene]",
	Short: "Run a scene",
	Long: `Run a scene in the terminal. Without an argument the scene from the
config file is used.

Controls:
  Arrows/WASD/HJKL  - Move
  P/Space           - Pause
  Q/Esc/Ctrl+C      - Quit

Examples:
  tinypix run
  tinypix run rain
  tinypix run walker --fps 30 --seed 42
  tinypix run walker --config ./my-tinypix.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Scene = args[0]
	}

	// Check if scene exists
	if !registry.Exists(cfg.Scene) {
		return fmt.Errorf("unknown scene %q, run 'tinypix list' to see available scenes", cfg.Scene)
	}
	scene, err := registry.Create(cfg.Scene)
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(fd) {
		return errors.New("run needs an interactive terminal")
	}

	// Get terminal size before tcell takes over
	termSize := core.NewScreenSize(80, 24)
	if w, h, sizeErr := xterm.GetSize(fd); sizeErr == nil {
		termSize = core.NewScreenSize(w, h)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	// Open the session journal; the scene still runs without it
	var saver app.SessionSaver
	if cfg.Storage.Enabled {
		store, storeErr := storage.Open(cfg.Storage.Path)
		if storeErr != nil {
			logger.Warn("could not open session database", "error", storeErr)
		} else {
			defer store.Close()
			saver = store
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	target, err := term.Open()
	if err != nil {
		return err
	}
	defer target.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Finalizing the screen unblocks the key producer so the stream can end.
	context.AfterFunc(ctx, target.Close)

	stream, err := events.Start(ctx, cfg.FPS, target, events.WithLogger(logger))
	if err != nil {
		return err
	}

	vpPos, vpSize := cfg.ViewportRect(termSize)
	camPos, camSize := cfg.CameraRect(vpSize)

	stats, runErr := app.Run(ctx, stream, app.Options{
		Scene: scene,
		Runtime: core.RuntimeConfig{
			World:    cfg.WorldSize(),
			TickRate: cfg.FPS,
			Seed:     seed,
		},
		Camera:     core.NewCamera(camPos, camSize),
		Viewport:   core.NewViewport(vpPos, vpSize),
		Target:     target,
		Background: cfg.BackgroundGlyph(),
		Saver:      saver,
		Logger:     logger,
	})

	// Restore the terminal before printing anything
	stop()
	target.Close()

	if runErr != nil {
		return runErr
	}
	fmt.Printf("%s: %d frames, %d ticks, %d keys in %s (%s, seed %d)\n",
		scene.Title(), stats.Frames, stats.Ticks, stats.Keys,
		stats.Duration.Round(time.Millisecond), stats.EndReason, seed)
	return nil
}
