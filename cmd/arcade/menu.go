package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a scene picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to change the difficulty and
Enter to start a scene. Esc in a scene returns to the menu.

Examples:
  arcade menu
  arcade menu --fps 30 --sound
  arcade menu --db ./scores.db
  arcade menu --config-dir ./my-configs --seed 42`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty preset")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play collision sound cues")
	menuCmd.Flags().StringVar(&flagConfigDir, "config-dir", "", "Directory with <scene>.yaml config overrides")
}

func runMenu(_ *cobra.Command, _ []string) {
	preset := mustPreset()
	logger, closeLog := mustLogger(io.Discard)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	hooks, stopSound := soundHooks(logger)
	defer stopSound()

	for {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}

		result, err := tui.RunMenu(width, height, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if result.Quit {
			return
		}
		preset = result.Preset

		if result.WantsScoreboard {
			back, err := tui.RunScoreboard(store, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !back {
				return
			}
			continue
		}

		sc, err := registry.Create(result.SceneID, registry.Options{
			ConfigPath: config.PathIn(flagConfigDir, result.SceneID),
			Preset:     preset,
			Seed:       flagSeed,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
			return
		}

		logger.Info("playing", "scene", sc.ID(), "preset", preset)
		quit, err := tui.Run(sc, tui.Options{
			Store:  store,
			Preset: preset,
			FPS:    flagFPS,
			Width:  width,
			Height: height,
			Logger: logger,
			Hooks:  hooks,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running scene: %v\n", err)
			return
		}
		if quit {
			return
		}
	}
}
