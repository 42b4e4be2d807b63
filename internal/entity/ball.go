package entity

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/collision"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// Ball bounces off the top and side walls, paddles and bricks.
// Leaving through the bottom edge ends the round.
type Ball struct {
	Body
	Speed float64
}

// NewBall creates a ball with its top-left corner at pos moving at vel.
// shape selects the hit test; ShapeCircle uses the inscribed circle.
func NewBall(pos, size, vel core.Vec2, shape collision.Shape, color core.Color) *Ball {
	speed := math.Max(math.Abs(vel.X), math.Abs(vel.Y))
	return &Ball{
		Body: Body{
			Pos:   pos,
			Size:  size,
			Vel:   vel,
			Shape: shape,
			Color: color,
			Kind:  KindBall,
		},
		Speed: speed,
	}
}

// Update advances the ball and reflects it off the world walls.
func (b *Ball) Update(dt float64, ctx *Context) {
	if !ctx.Running() {
		return
	}

	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	bounds := ctx.Bounds
	if b.Pos.X < bounds.Left() {
		b.Pos.X = bounds.Left()
		b.Vel.X = math.Abs(b.Vel.X)
	}
	if b.Pos.X+b.Size.X > bounds.Right() {
		b.Pos.X = bounds.Right() - b.Size.X
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	if b.Pos.Y < bounds.Top() {
		b.Pos.Y = bounds.Top()
		b.Vel.Y = math.Abs(b.Vel.Y)
	}
	if b.Pos.Y+b.Size.Y >= bounds.Bottom() {
		ctx.EndRound()
	}
}

// OnCollision pushes the ball out of paddles and bricks and reflects the
// velocity component on the dominant penetration axis, pointing it away from
// the obstacle.
func (b *Ball) OnCollision(other Entity, res collision.Result) {
	switch other.Base().Kind {
	case KindPaddle, KindBrick:
		b.Pos = b.Pos.Add(res.Vec())
		if res.DominantX() {
			b.Vel.X = core.Sign(res.DX) * math.Abs(b.Vel.X)
		} else {
			b.Vel.Y = core.Sign(res.DY) * math.Abs(b.Vel.Y)
		}
	case KindBall, KindWalker, KindProp:
	}
}

// Draw renders the ball as a circle when it collides as one.
func (b *Ball) Draw(s render.Surface) {
	if b.Shape == collision.ShapeCircle {
		c := collision.CircleIn(b.Bounds())
		s.FillCircle(c.Center.X, c.Center.Y, c.R, b.Color)
		return
	}
	b.Body.Draw(s)
}
