// arcade runs the 2D simulation scenes in a terminal, a desktop window or
// over SSH.
//
// Usage:
//
//	arcade list              - List available scenes
//	arcade play <scene>      - Play a scene
//	arcade menu              - Start menu to pick scenes interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <scene>    - Show high scores for a scene
//	arcade config <scene>    - Print the effective YAML configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible scenery
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>    - Write logs to a file (the terminal belongs to the UI)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/storage"

	// Import scenes to register them
	_ "github.com/vovakirdan/arcade-engine/internal/games/breakout"
	_ "github.com/vovakirdan/arcade-engine/internal/games/camerademo"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	// Shared by play, menu, serve and config
	flagConfig     string
	flagConfigDir  string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - a small 2D engine with Breakout and a camera demo",
	Long: `Arcade runs real-time 2D scenes: a fixed update, collide and render
loop with a following, zoomable camera.

Available commands:
  list     - Show all available scenes
  play     - Play a specific scene directly
  menu     - Interactive scene picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration of a scene

Examples:
  arcade list
  arcade play breakout
  arcade play camera-demo --backend window
  arcade menu
  arcade serve --ssh :2222
  arcade scores breakout`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger from the global flags. Without --log-file,
// output goes to fallback (io.Discard while a UI owns the terminal).
// The returned closer is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, closer, nil
}

// mustLogger is newLogger that exits on bad flags.
func mustLogger(fallback io.Writer) (*log.Logger, func() error) {
	logger, closer, err := newLogger(fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closer
}

// mustPreset parses --difficulty or exits.
func mustPreset() config.Preset {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return preset
}

// openStore opens the scores database. Play goes on without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
