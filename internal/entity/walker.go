package entity

import (
	"github.com/vovakirdan/arcade-engine/internal/collision"
	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Walker moves freely in eight directions. Diagonal movement is normalized
// so it is no faster than straight movement.
type Walker struct {
	Body
	Speed float64
	Clamp bool // Keep the walker inside the world
}

// NewWalker creates a walker centered on center.
func NewWalker(center core.Vec2, size, speed float64, color core.Color) *Walker {
	w := &Walker{
		Body: Body{
			Size:  core.V(size, size),
			Shape: collision.ShapeRect,
			Color: color,
			Kind:  KindWalker,
		},
		Speed: speed,
		Clamp: true,
	}
	w.SetCenter(center)
	return w
}

// Update moves the walker. It ignores the round state.
func (w *Walker) Update(dt float64, ctx *Context) {
	var dir core.Vec2
	if core.AnyDown(ctx.Input, KeysLeft...) {
		dir.X--
	}
	if core.AnyDown(ctx.Input, KeysRight...) {
		dir.X++
	}
	if core.AnyDown(ctx.Input, KeysUp...) {
		dir.Y--
	}
	if core.AnyDown(ctx.Input, KeysDown...) {
		dir.Y++
	}

	w.Vel = dir.Normalize().Scale(w.Speed)
	w.Pos = w.Pos.Add(w.Vel.Scale(dt))

	if w.Clamp {
		b := ctx.Bounds
		w.Pos.X = core.ClampF(w.Pos.X, b.Left(), b.Right()-w.Size.X)
		w.Pos.Y = core.ClampF(w.Pos.Y, b.Top(), b.Bottom()-w.Size.Y)
	}
}
