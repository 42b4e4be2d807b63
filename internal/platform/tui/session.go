package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages a full arcade session inside one program:
// menu -> game -> menu, with the scoreboard reachable from the menu.
// It is the top-level model for SSH sessions.
type SessionModel struct {
	opts   Options
	fixed  string // Scene to play without a menu
	screen sessionScreen

	menu   MenuModel
	game   GameModel
	scores ScoreboardModel

	quitting bool
}

// NewSessionModel creates a new session model. A non-empty scene skips
// the menu.
func NewSessionModel(opts Options, scene string) SessionModel {
	opts = opts.withDefaults()
	m := SessionModel{opts: opts, fixed: scene}
	m.menu = m.newMenu()
	if scene != "" {
		m, _ = m.startGame(scene, opts.Preset)
	}
	return m
}

func (m SessionModel) newMenu() MenuModel {
	menu := NewMenuModel(m.opts.Width, m.opts.Height, m.opts.Preset)
	menu.embedded = true
	return menu
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.Width, m.opts.Height)
		m.scores.embedded = true
		m.screen = screenScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().ID, m.menu.Preset())
	}
	return m, cmd
}

func (m SessionModel) startGame(id string, preset config.Preset) (SessionModel, tea.Cmd) {
	sc, err := registry.Create(id, registry.Options{
		ConfigPath: config.PathIn(m.opts.ConfigDir, id),
		Preset:     preset,
		Seed:       m.opts.Seed,
	})
	if err != nil {
		m.opts.Logger.Error("could not create scene", "scene", id, "error", err)
		m.menu = m.newMenu()
		m.screen = screenMenu
		return m, nil
	}

	opts := m.opts
	opts.Preset = preset
	m.game = NewGameModel(sc, opts)
	m.game.embedded = m.fixed == ""
	m.screen = screenGame
	m.opts.Logger.Info("scene started", "scene", id, "preset", preset)
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting(), m.game.BackToMenu() && m.fixed != "":
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		m.menu = m.newMenu()
		m.screen = screenMenu
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.menu = m.newMenu()
		m.screen = screenMenu
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}
