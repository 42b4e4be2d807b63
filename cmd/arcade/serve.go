package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeScene  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the terminal arcade over SSH",
	Long: `Host the terminal arcade over SSH.

Every connection runs its own simulation; the scores database is shared,
so all players see one leaderboard. The host key is created on first start
at ~/.arcade/host_key unless --host-key points elsewhere.

Examples:
  arcade serve
  arcade serve --ssh :2222 --game breakout --difficulty hard
  arcade serve --config-dir /etc/arcade --seed 42

Connect with:
  ssh -p 23234 localhost`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", tui.DefaultSSHAddr, "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", tui.DefaultIdleTimeout, "Disconnect idle sessions after this long")
	serveCmd.Flags().StringVar(&flagServeScene, "game", "", "Scene every session plays (default: show the menu)")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset")
	serveCmd.Flags().StringVar(&flagConfigDir, "config-dir", "", "Directory with <scene>.yaml config overrides")
}

func runServe(_ *cobra.Command, _ []string) {
	preset := mustPreset()
	logger, closeLog := mustLogger(os.Stderr)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	host, err := tui.NewHost(tui.HostConfig{
		Addr:        flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: flagIdleTimeout,
		Scene:       flagServeScene,
		Session: tui.Options{
			Store:     store,
			Preset:    preset,
			FPS:       flagFPS,
			Logger:    logger,
			ConfigDir: flagConfigDir,
			Seed:      flagSeed,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving on %s (host key %s), Ctrl+C to stop\n", host.Addr(), host.HostKeyPath())
	if err := host.Serve(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
