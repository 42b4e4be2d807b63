package entity

import (
	"github.com/vovakirdan/arcade-engine/internal/collision"
	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Brick is removed on its first contact with a ball.
type Brick struct {
	Body
	Row, Col int
	Points   int
}

// NewBrick creates a brick at grid cell (row, col).
func NewBrick(pos, size core.Vec2, row, col, points int, color core.Color) *Brick {
	return &Brick{
		Body: Body{
			Pos:   pos,
			Size:  size,
			Shape: collision.ShapeRect,
			Color: color,
			Kind:  KindBrick,
		},
		Row:    row,
		Col:    col,
		Points: points,
	}
}

// OnCollision marks the brick for removal when a ball touches it.
func (b *Brick) OnCollision(other Entity, _ collision.Result) {
	switch other.Base().Kind {
	case KindBall:
		b.Remove()
	case KindPaddle, KindBrick, KindWalker, KindProp:
	}
}
