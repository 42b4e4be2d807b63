package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-engine/internal/audio"
	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
	"github.com/vovakirdan/arcade-engine/internal/platform/window"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

const (
	backendTerm   = "term"
	backendWindow = "window"
)

var (
	flagBackend string
	flagSound   bool
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Play a scene",
	Long: `Start playing the specified scene.

Controls:
  Arrows/A/D   - Move the paddle (Breakout)
  Arrows/WASD  - Walk (camera demo)
  Space/Enter  - Start, or restart after game over
  +/- / wheel  - Zoom (camera demo)
  Q            - Quit

Difficulty options:
  easy   - Wider paddle, slower ball / faster walker, fewer trees
  normal - Defaults from the config file
  hard   - Narrow paddle, fast ball / slower walker, dense forest

Examples:
  arcade play breakout
  arcade play breakout --difficulty hard --sound
  arcade play camera-demo --backend window
  arcade play breakout --config ./my-breakout.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTerm, "Render back end: term or window")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play collision sound cues")
}

func runPlay(_ *cobra.Command, args []string) {
	sceneID := args[0]

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available scenes.")
		os.Exit(1)
	}
	if flagBackend != backendTerm && flagBackend != backendWindow {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (want term or window)\n", flagBackend)
		os.Exit(1)
	}

	preset := mustPreset()
	logger, closeLog := mustLogger(io.Discard)
	defer closeLog()

	sc, err := registry.Create(sceneID, registry.Options{
		ConfigPath: flagConfig,
		Preset:     preset,
		Seed:       flagSeed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	hooks, stopSound := soundHooks(logger)

	runErr := playScene(sc, store, preset, hooks, logger)

	stopSound()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}

// playScene runs sc on the back end chosen by --backend.
func playScene(sc engine.Scene, store *storage.Store, preset config.Preset, hooks engine.Hooks, logger *log.Logger) error {
	logger.Info("playing", "scene", sc.ID(), "backend", flagBackend, "preset", preset)

	if flagBackend == backendWindow {
		return window.Run(sc, window.Options{
			Store:  store,
			Preset: preset,
			FPS:    flagFPS,
			Logger: logger,
			Hooks:  hooks,
		})
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	_, err := tui.Run(sc, tui.Options{
		Store:  store,
		Preset: preset,
		FPS:    flagFPS,
		Width:  width,
		Height: height,
		Logger: logger,
		Hooks:  hooks,
	})
	return err
}

// soundHooks opens the audio device when --sound is set. A missing device
// only disables sound.
func soundHooks(logger *log.Logger) (engine.Hooks, func()) {
	if !flagSound {
		return engine.Hooks{}, func() {}
	}

	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing without sound", "error", err)
		return engine.Hooks{}, func() {}
	}
	return sm.Hooks(), sm.Close
}
