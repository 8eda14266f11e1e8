// tinypix renders scrolling glyph scenes in the terminal through a camera and
// a viewport.
//
// Usage:
//
//	tinypix list                 - List available scenes
//	tinypix run [scene]          - Run a scene (default from config)
//	tinypix sessions [scene]     - Show the session journal
//	tinypix config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Override the frame rate
//	--seed <value>   - Set RNG seed for reproducible scenes
//	--config <path>  - Use a custom config file
//	--db <path>      - Override the session database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tinypix/internal/config"

	// Import scenes to register them
	_ "github.com/vovakirdan/tinypix/internal/scenes/rain"
	_ "github.com/vovakirdan/tinypix/internal/scenes/walker"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tinypix",
	Short: "tinypix - glyph scenes through a terminal camera",
	Long: `tinypix draws a world of glyphs into your terminal through a camera
and a viewport, driven by a fixed frame rate and your keyboard.

Available commands:
  list      - Show all available scenes
  run       - Run a scene
  sessions  - View the session journal
  config    - Print the effective configuration

Examples:
  tinypix list
  tinypix run walker
  tinypix run rain --fps 30 --seed 7
  tinypix sessions walker --limit 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to session database (default from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS != 0 {
		cfg.FPS = flagFPS
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, cfg.Validate()
}
