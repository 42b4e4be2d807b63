package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <scene>",
	Short: "Print the effective configuration of a scene",
	Long: `Print the YAML configuration a scene would run with, after the config
search order and the difficulty preset have been applied. Redirect it to
~/.arcade/configs/<scene>.yaml to start customizing.

Examples:
  arcade config breakout
  arcade config camera-demo --difficulty hard
  arcade config breakout --config ./my-breakout.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(_ *cobra.Command, args []string) {
	sceneID := args[0]
	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		os.Exit(1)
	}

	data, err := config.Effective(sceneID, flagConfig, mustPreset())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
