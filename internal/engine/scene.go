package engine

import (
	"time"

	"github.com/vovakirdan/arcade-engine/internal/collision"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/entity"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// BoundsProvider reports the world size. The loop asks every frame.
type BoundsProvider interface {
	WorldBounds() core.Bounds
}

// StaticBounds is a BoundsProvider with a fixed size.
type StaticBounds core.Bounds

// WorldBounds returns the fixed size.
func (b StaticBounds) WorldBounds() core.Bounds {
	return core.Bounds(b)
}

// Scene builds a playable world inside a Loop.
// Scenes contain game rules only; they never see the back end.
type Scene interface {
	BoundsProvider

	// ID returns a unique identifier (e.g. "breakout"), used by the CLI
	// and score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Populate adds the scene's entities to an empty loop. It runs once at
	// construction and again on every Restart, so it must reset any
	// per-round scene state.
	Populate(l *Loop)
}

// Overlay is implemented by scenes that draw screen-space HUD text after
// the world has been rendered.
type Overlay interface {
	DrawOverlay(s render.Surface, round core.RoundState)
}

// AutoStarter is implemented by scenes that start running without a
// Start request.
type AutoStarter interface {
	AutoStart() bool
}

// Fitter is implemented by scenes whose whole world must always be visible.
// The loop scales the view to fit the viewport before the camera transform.
type Fitter interface {
	Fitted() bool
}

// Zoomer is implemented by scenes that accept user zoom. A step of zero
// disables zooming.
type Zoomer interface {
	ZoomStep() float64
}

// Pacer is implemented by scenes that tune the dt cap.
// Options.MaxDelta takes precedence.
type Pacer interface {
	MaxDelta() time.Duration
}

// Scorer is implemented by scenes that keep a score worth persisting.
type Scorer interface {
	Score() int
}

// RemovalListener is implemented by scenes that react to swept entities,
// e.g. awarding points for a destroyed brick.
type RemovalListener interface {
	EntityRemoved(e entity.Entity)
}

// Hooks are optional callbacks for the platform layer (sound, logging).
// Nil hooks are skipped.
type Hooks struct {
	OnCollision   func(a, b entity.Entity, res collision.Result)
	OnRemove      func(e entity.Entity)
	OnRoundChange func(from, to core.RoundState)
}
