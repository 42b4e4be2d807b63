// Package engine runs the frame loop: update, camera, collision with
// deferred removal, then a camera-transformed render pass followed by
// screen-space overlays.
//
// A Loop is single-threaded. The back end calls Frame once per tick and
// only schedules the next tick after Frame returns.
package engine

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/camera"
	"github.com/vovakirdan/arcade-engine/internal/collision"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/entity"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// DefaultMaxDelta caps dt after a stall (window drag, suspended terminal).
const DefaultMaxDelta = 50 * time.Millisecond

// Options configures a Loop. The zero value is usable.
type Options struct {
	MaxDelta time.Duration  // Upper bound for dt; DefaultMaxDelta if zero
	Bounds   BoundsProvider // Overrides the scene's own world size
	Logger   *log.Logger    // Discards output if nil
	Hooks    Hooks
}

// Loop owns the entities, the camera and the round state of one scene.
type Loop struct {
	Hooks Hooks

	scene    Scene
	bounds   BoundsProvider
	cam      *camera.Camera
	input    core.Input
	logger   *log.Logger
	maxDelta float64

	entities     []entity.Entity
	round        core.RoundState
	startPending bool

	last    time.Time
	hasLast bool
	frames  uint64
}

// New creates a loop and populates it from the scene.
func New(scene Scene, opts Options) *Loop {
	l := &Loop{
		Hooks:    opts.Hooks,
		scene:    scene,
		bounds:   opts.Bounds,
		cam:      camera.New(),
		input:    core.NoInput{},
		logger:   opts.Logger,
		maxDelta: opts.MaxDelta.Seconds(),
		round:    core.RoundNotStarted,
	}
	if l.bounds == nil {
		l.bounds = scene
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	if opts.MaxDelta <= 0 {
		l.maxDelta = DefaultMaxDelta.Seconds()
		if p, ok := scene.(Pacer); ok && p.MaxDelta() > 0 {
			l.maxDelta = p.MaxDelta().Seconds()
		}
	}

	l.populate()
	return l
}

func (l *Loop) populate() {
	l.scene.Populate(l)
	l.logger.Debug("scene populated", "scene", l.scene.ID(), "entities", len(l.entities))
	if a, ok := l.scene.(AutoStarter); ok && a.AutoStart() {
		l.Start()
	}
}

// Scene returns the scene driving this loop.
func (l *Loop) Scene() Scene {
	return l.scene
}

// Camera returns the loop's camera.
func (l *Loop) Camera() *camera.Camera {
	return l.cam
}

// Bounds returns the current world size.
func (l *Loop) Bounds() core.Bounds {
	return l.bounds.WorldBounds()
}

// SetInput installs the keyboard snapshot entities read during Update.
func (l *Loop) SetInput(in core.Input) {
	if in == nil {
		in = core.NoInput{}
	}
	l.input = in
}

// Round returns the current round state.
func (l *Loop) Round() core.RoundState {
	return l.round
}

// Frames returns how many updates have run.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Add appends an entity. Entities update, collide and draw in insertion
// order.
func (l *Loop) Add(e entity.Entity) {
	l.entities = append(l.entities, e)
}

// Entities returns a copy of the active entity list.
func (l *Loop) Entities() []entity.Entity {
	return slices.Clone(l.entities)
}

// Start requests the round to begin. The request is consumed at the next
// tick, and only if the round has not started yet.
func (l *Loop) Start() {
	if l.round == core.RoundNotStarted {
		l.startPending = true
	}
}

// Restart rebuilds the scene after a round is over. It returns false and
// does nothing in any other state.
func (l *Loop) Restart() bool {
	if l.round != core.RoundOver {
		return false
	}

	clear(l.entities)
	l.entities = l.entities[:0]
	l.cam.Unfollow()
	l.cam.Pos = core.Vec2{}
	l.startPending = false
	l.setRound(core.RoundNotStarted)
	l.populate()
	return true
}

// Zoom changes the camera zoom by steps scene zoom steps (positive zooms
// in). It does nothing for scenes without zoom.
func (l *Loop) Zoom(steps int) {
	if z, ok := l.scene.(Zoomer); ok && z.ZoomStep() > 0 {
		l.cam.AdjustZoom(float64(steps) * z.ZoomStep())
	}
}

// Frame runs one full tick at wall-clock time now and renders into s.
// The first frame has dt = 0; later frames use the elapsed time, capped.
func (l *Loop) Frame(now time.Time, s render.Surface) {
	var dt float64
	if l.hasLast {
		dt = now.Sub(l.last).Seconds()
	}
	l.last = now
	l.hasLast = true

	l.Step(core.ClampF(dt, 0, l.maxDelta))
	l.Draw(s)
}

// Step runs the simulation phases of a tick without rendering:
// update, round transition, camera, collision, removal sweep.
func (l *Loop) Step(dt float64) {
	l.frames++

	if l.startPending {
		l.startPending = false
		l.setRound(core.RoundRunning)
	}

	ctx := &entity.Context{
		Bounds: l.bounds.WorldBounds(),
		Input:  l.input,
		Round:  l.round,
		Others: l.snapshot(),
	}
	for _, e := range l.entities {
		if u, ok := e.(entity.Updater); ok {
			u.Update(dt, ctx)
		}
	}
	if ctx.RoundEnded() {
		l.setRound(core.RoundOver)
	}

	l.cam.Update()
	l.collide()
	l.sweep()
}

// Draw renders the world through the camera, then the scene overlay in
// screen space.
func (l *Loop) Draw(s render.Surface) {
	s.Clear()

	s.Save()
	base := 1.0
	if f, ok := l.scene.(Fitter); ok && f.Fitted() {
		w, h := s.Size()
		world := l.bounds.WorldBounds()
		base = camera.FitScale(w, h, world.W, world.H)
	}
	l.cam.ApplyScaled(s, base)
	for _, e := range l.entities {
		if e.Base().Hidden {
			continue
		}
		if d, ok := e.(entity.Drawer); ok {
			d.Draw(s)
		}
	}
	s.Restore()

	if o, ok := l.scene.(Overlay); ok {
		o.DrawOverlay(s, l.round)
	}
}

func (l *Loop) snapshot() []entity.Body {
	bodies := make([]entity.Body, len(l.entities))
	for i, e := range l.entities {
		bodies[i] = *e.Base()
	}
	return bodies
}

// collide tests every unordered pair of shape-tagged entities once.
// The pair list is fixed before any handler runs; handlers only mark
// removals, which are applied by sweep.
func (l *Loop) collide() {
	active := make([]entity.Entity, 0, len(l.entities))
	for _, e := range l.entities {
		if e.Base().Shape.Collides() {
			active = append(active, e)
		}
	}

	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			a, b := active[i], active[j]
			res, ok := collision.Detect(a.Base().Hitbox(), b.Base().Hitbox())
			if !ok {
				continue
			}
			if h, ok := a.(entity.CollisionHandler); ok {
				h.OnCollision(b, res)
			}
			if h, ok := b.(entity.CollisionHandler); ok {
				h.OnCollision(a, res.Neg())
			}
			if l.Hooks.OnCollision != nil {
				l.Hooks.OnCollision(a, b, res)
			}
		}
	}
}

func (l *Loop) sweep() {
	kept := l.entities[:0]
	for _, e := range l.entities {
		if !e.Base().Removed() {
			kept = append(kept, e)
			continue
		}
		l.logger.Debug("entity removed", "kind", e.Base().Kind, "frame", l.frames)
		if t, ok := e.(camera.Target); ok && l.cam.Following(t) {
			l.cam.Unfollow()
		}
		if r, ok := l.scene.(RemovalListener); ok {
			r.EntityRemoved(e)
		}
		if l.Hooks.OnRemove != nil {
			l.Hooks.OnRemove(e)
		}
	}
	clear(l.entities[len(kept):])
	l.entities = kept
}

func (l *Loop) setRound(next core.RoundState) {
	prev := l.round
	if !prev.CanTransition(next) {
		return
	}
	l.round = next
	l.logger.Debug("round changed", "from", prev, "to", next)
	if l.Hooks.OnRoundChange != nil {
		l.Hooks.OnRoundChange(prev, next)
	}
}
