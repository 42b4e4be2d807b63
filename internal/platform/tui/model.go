package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

// Options configures a terminal game session.
type Options struct {
	Store  *storage.Store // Scores are not saved if nil
	Preset config.Preset  // Recorded with saved scores
	FPS    int
	Width  int // Terminal size in cells; 80x24 if zero
	Height int
	Hold   time.Duration // Key hold window; DefaultHold if zero
	Logger *log.Logger

	// Used by sessions that create scenes themselves
	ConfigDir string // <ConfigDir>/<scene>.yaml overrides the search order
	Seed      int64  // 0 seeds from the clock

	Hooks  engine.Hooks
}

func (o Options) withDefaults() Options {
	vp := core.Viewport{W: o.Width, H: o.Height, FPS: o.FPS}.Or(core.TerminalViewport)
	o.Width, o.Height, o.FPS = vp.W, vp.H, vp.FPS
	if o.Hold <= 0 {
		o.Hold = DefaultHold
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// GameModel is the Bubble Tea model that drives one Loop. Every FrameMsg
// runs a full frame into the cell screen; View only serializes it.
type GameModel struct {
	loop   *engine.Loop
	surf   *Surface
	keys   *core.Keys
	keymap GameKeyMap
	help   help.Model
	opts   Options

	embedded   bool // Esc returns to the session menu instead of quitting
	scoreSaved bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for the scene.
func NewGameModel(sc engine.Scene, opts Options) GameModel {
	opts = opts.withDefaults()

	keys := core.NewKeys(opts.Hold)
	loop := engine.New(sc, engine.Options{Logger: opts.Logger, Hooks: opts.Hooks})
	loop.SetInput(keys)

	km := DefaultGameKeyMap()
	z, ok := sc.(engine.Zoomer)
	zoomable := ok && z.ZoomStep() > 0
	km.ZoomIn.SetEnabled(zoomable)
	km.ZoomOut.SetEnabled(zoomable)

	h := help.New()
	h.Width = opts.Width

	return GameModel{
		loop:   loop,
		surf:   NewSurface(core.NewScreen(opts.Width, max(opts.Height-1, 1))),
		keys:   keys,
		keymap: km,
		help:   h,
		opts:   opts,
	}
}

// Loop returns the running loop.
func (m GameModel) Loop() *engine.Loop {
	return m.loop
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return frameCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.zoom(1)
			case tea.MouseButtonWheelDown:
				m.zoom(-1)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The bottom line is reserved for the help bar.
		m.surf.Screen().Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.loop.Frame(time.Time(msg), m.surf)
		m.saveScore()
		return m, frameCmd(m.opts.FPS)
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Back):
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Start):
		m.startOrRestart()

	case key.Matches(msg, m.keymap.ZoomIn):
		m.zoom(1)

	case key.Matches(msg, m.keymap.ZoomOut):
		m.zoom(-1)

	default:
		m.keys.Press(keyName(msg))
	}
	return m, nil
}

// startOrRestart maps the single start key onto the round state machine.
func (m *GameModel) startOrRestart() {
	switch m.loop.Round() {
	case core.RoundNotStarted:
		m.loop.Start()
	case core.RoundOver:
		if m.loop.Restart() {
			m.scoreSaved = false
			m.keys.Reset()
		}
	case core.RoundRunning:
	}
}

func (m *GameModel) zoom(steps int) {
	if m.keymap.ZoomIn.Enabled() {
		m.loop.Zoom(steps)
	}
}

// saveScore records the score once per finished round.
func (m *GameModel) saveScore() {
	if m.scoreSaved || m.loop.Round() != core.RoundOver {
		return
	}
	m.scoreSaved = true

	sc, ok := m.loop.Scene().(engine.Scorer)
	if !ok || sc.Score() <= 0 || m.opts.Store == nil {
		return
	}
	id := m.loop.Scene().ID()
	if _, err := m.opts.Store.SaveScore(id, string(m.opts.Preset), sc.Score()); err != nil {
		m.opts.Logger.Warn("could not save score", "scene", id, "error", err)
		return
	}
	m.opts.Logger.Info("score saved", "scene", id, "score", sc.Score())
}

// View renders the last frame plus the help bar.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	return RenderScreen(m.surf.Screen()) + "\n" + m.help.View(m.keymap)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a scene in the local terminal until the user leaves it. It
// reports whether the user quit rather than went back.
func Run(sc engine.Scene, opts Options) (bool, error) {
	p := tea.NewProgram(
		NewGameModel(sc, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: run: %w", err)
	}
	m, ok := final.(GameModel)
	return ok && m.IsQuitting(), nil
}
