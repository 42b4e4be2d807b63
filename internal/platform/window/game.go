// Package window is the desktop back end built on Ebitengine. Update runs
// one loop frame into a display list and Draw replays it.
package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/render"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

// Options configures a window session.
type Options struct {
	Store  *storage.Store
	Preset config.Preset
	FPS    int
	Width  int
	Height int
	Logger *log.Logger
	Hooks  engine.Hooks
}

// keyBindings maps the names entities query to physical keys.
var keyBindings = map[string]ebiten.Key{
	"arrowleft":  ebiten.KeyArrowLeft,
	"arrowright": ebiten.KeyArrowRight,
	"arrowup":    ebiten.KeyArrowUp,
	"arrowdown":  ebiten.KeyArrowDown,
	"a":          ebiten.KeyA,
	"d":          ebiten.KeyD,
	"w":          ebiten.KeyW,
	"s":          ebiten.KeyS,
}

// input is what one Update gathered from the devices.
type input struct {
	held  map[string]bool
	start bool
	zoom  int
	quit  bool
}

// Game adapts a Loop to ebiten.Game.
type Game struct {
	loop *engine.Loop
	rec  *render.Recorder
	keys *core.Keys
	opts Options

	scoreSaved bool
}

// NewGame creates a window game for the scene.
func NewGame(sc engine.Scene, opts Options) *Game {
	vp := core.Viewport{W: opts.Width, H: opts.Height, FPS: opts.FPS}.Or(core.WindowViewport)
	opts.Width, opts.Height, opts.FPS = vp.W, vp.H, vp.FPS
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	keys := core.NewKeys(0)
	loop := engine.New(sc, engine.Options{Logger: opts.Logger, Hooks: opts.Hooks})
	loop.SetInput(keys)

	return &Game{
		loop: loop,
		rec:  render.NewRecorder(float64(opts.Width), float64(opts.Height)),
		keys: keys,
		opts: opts,
	}
}

// Update polls the devices and runs one frame.
func (g *Game) Update() error {
	if !g.apply(g.poll(), time.Now()) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) poll() input {
	in := input{held: make(map[string]bool, len(keyBindings))}
	for name, k := range keyBindings {
		in.held[name] = ebiten.IsKeyPressed(k)
	}
	in.start = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.quit = inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	_, dy := ebiten.Wheel()
	switch {
	case dy > 0, inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		in.zoom = 1
	case dy < 0, inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		in.zoom = -1
	}
	return in
}

// apply feeds one poll into the loop and runs a frame. It returns false
// when the user asked to quit.
func (g *Game) apply(in input, now time.Time) bool {
	if in.quit {
		return false
	}

	for name, down := range in.held {
		if down {
			g.keys.Press(name)
		} else {
			g.keys.Release(name)
		}
	}

	if in.start {
		switch g.loop.Round() {
		case core.RoundNotStarted:
			g.loop.Start()
		case core.RoundOver:
			if g.loop.Restart() {
				g.scoreSaved = false
			}
		case core.RoundRunning:
		}
	}
	if in.zoom != 0 {
		g.loop.Zoom(in.zoom)
	}

	g.loop.Frame(now, g.rec)
	g.saveScore()
	return true
}

// saveScore records the score once per finished round.
func (g *Game) saveScore() {
	if g.scoreSaved || g.loop.Round() != core.RoundOver {
		return
	}
	g.scoreSaved = true

	sc, ok := g.loop.Scene().(engine.Scorer)
	if !ok || sc.Score() <= 0 || g.opts.Store == nil {
		return
	}
	id := g.loop.Scene().ID()
	if _, err := g.opts.Store.SaveScore(id, string(g.opts.Preset), sc.Score()); err != nil {
		g.opts.Logger.Warn("could not save score", "scene", id, "error", err)
	}
}

// Draw replays the display list recorded by the last Update.
func (g *Game) Draw(screen *ebiten.Image) {
	_, ch := render.CharSize(g.rec)
	for _, op := range g.rec.Ops() {
		switch op.Kind {
		case render.OpClear:
			screen.Fill(Background)
		case render.OpRect:
			r := op.Rect
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), RGBA(op.Color), false)
		case render.OpCircle:
			vector.DrawFilledCircle(screen, float32(op.Center.X), float32(op.Center.Y), float32(op.Radius), RGBA(op.Color), true)
		case render.OpText:
			ebitenutil.DebugPrintAt(screen, op.Text, int(op.Center.X), int(op.Center.Y-ch/2))
		case render.OpSave, render.OpRestore, render.OpTranslate, render.OpScale:
			// Geometry is recorded in screen space
		}
	}
}

// Layout keeps the logical screen equal to the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.rec.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and plays the scene until it is closed.
func Run(sc engine.Scene, opts Options) error {
	g := NewGame(sc, opts)

	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(sc.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.opts.FPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
