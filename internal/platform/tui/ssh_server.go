package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/arcade-engine/internal/registry"
)

// SSH host defaults.
const (
	DefaultSSHAddr     = ":23234"
	DefaultIdleTimeout = 30 * time.Minute
	shutdownGrace      = 10 * time.Second
)

// HostConfig configures the SSH host.
type HostConfig struct {
	Addr        string
	HostKeyPath string // Created on first start; ~/.arcade/host_key if empty
	IdleTimeout time.Duration
	Scene       string // Sessions skip the menu when set

	// Session is the template for every connection. Width and Height are
	// taken from the client's PTY; the store is shared by all sessions.
	Session Options
}

// Host serves the terminal back end over SSH. Every connection gets its own
// Bubble Tea program and therefore its own Loop.
type Host struct {
	cfg    HostConfig
	srv    *ssh.Server
	log    *log.Logger
	active atomic.Int64
}

// NewHost validates cfg and prepares the server without listening.
func NewHost(cfg HostConfig) (*Host, error) {
	if cfg.Scene != "" && !registry.Exists(cfg.Scene) {
		return nil, fmt.Errorf("tui: unknown scene %q", cfg.Scene)
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultSSHAddr
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}
	cfg.Session = cfg.Session.withDefaults()

	keyPath := cfg.HostKeyPath
	if keyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: host key: %w", err)
		}
		keyPath = filepath.Join(home, ".arcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(keyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: host key dir: %w", err)
	}
	cfg.HostKeyPath = keyPath

	h := &Host{cfg: cfg, log: cfg.Session.Logger}
	srv, err := wish.NewServer(
		wish.WithAddress(cfg.Addr),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		// Last runs first
		wish.WithMiddleware(
			bubbletea.Middleware(h.program),
			activeterm.Middleware(),
			h.track,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: ssh server: %w", err)
	}
	h.srv = srv
	return h, nil
}

func (h *Host) program(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	opts := h.cfg.Session
	opts.Width, opts.Height = pty.Window.Width, pty.Window.Height
	opts.Logger = h.log.With("user", sess.User())
	return NewSessionModel(opts, h.cfg.Scene), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

func (h *Host) track(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		h.log.Info("session open", "user", sess.User(), "remote", sess.RemoteAddr(), "active", h.active.Add(1))
		next(sess)
		h.log.Info("session closed", "user", sess.User(),
			"active", h.active.Add(-1), "duration", time.Since(start).Round(time.Second))
	}
}

// Active returns the number of connected sessions.
func (h *Host) Active() int64 {
	return h.active.Load()
}

// Addr returns the configured listen address.
func (h *Host) Addr() string {
	return h.cfg.Addr
}

// HostKeyPath returns the resolved host key location.
func (h *Host) HostKeyPath() string {
	return h.cfg.HostKeyPath
}

// Serve listens until ctx is done, then shuts down giving open sessions a
// grace period.
func (h *Host) Serve(ctx context.Context) error {
	h.log.Info("listening", "addr", h.cfg.Addr, "scene", h.cfg.Scene)

	errc := make(chan error, 1)
	go func() { errc <- h.srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: ssh: %w", err)
	case <-ctx.Done():
	}

	h.log.Info("shutting down", "active", h.Active())
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := h.srv.Shutdown(sctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("tui: ssh shutdown: %w", err)
	}
	return nil
}
