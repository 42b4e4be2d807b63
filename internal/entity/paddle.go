package entity

import (
	"github.com/vovakirdan/arcade-engine/internal/collision"
	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Key names read by the movable variants.
var (
	KeysLeft  = []string{"arrowleft", "a"}
	KeysRight = []string{"arrowright", "d"}
	KeysUp    = []string{"arrowup", "w"}
	KeysDown  = []string{"arrowdown", "s"}
)

// Paddle moves horizontally under keyboard control at a constant speed.
type Paddle struct {
	Body
	Speed float64
}

// NewPaddle creates a paddle with its top-left corner at pos.
func NewPaddle(pos, size core.Vec2, speed float64, color core.Color) *Paddle {
	return &Paddle{
		Body: Body{
			Pos:   pos,
			Size:  size,
			Shape: collision.ShapeRect,
			Color: color,
			Kind:  KindPaddle,
		},
		Speed: speed,
	}
}

// Update moves the paddle and keeps it inside the world's horizontal extent.
// Holding both directions cancels out. Nothing happens unless the round runs.
func (p *Paddle) Update(dt float64, ctx *Context) {
	if !ctx.Running() {
		p.Vel = core.Vec2{}
		return
	}

	var dir float64
	if core.AnyDown(ctx.Input, KeysLeft...) {
		dir--
	}
	if core.AnyDown(ctx.Input, KeysRight...) {
		dir++
	}

	p.Vel.X = dir * p.Speed
	p.Pos.X += p.Vel.X * dt
	p.Pos.X = core.ClampF(p.Pos.X, ctx.Bounds.Left(), ctx.Bounds.Right()-p.Size.X)
}
