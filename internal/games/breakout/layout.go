// Package breakout implements a brick breaker scene on top of the engine:
// a paddle, one ball and a grid of bricks in an origin-centered world.
package breakout

import (
	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
)

// launchGap is the distance between the paddle top and the ball center at
// the start of a round.
const launchGap = 20

// Layout computes where every entity starts. All positions are top-left
// corners in world units.
type Layout struct {
	cfg    config.BreakoutConfig
	bounds core.Bounds
}

// NewLayout creates a layout for cfg.
func NewLayout(cfg config.BreakoutConfig) Layout {
	return Layout{cfg: cfg, bounds: cfg.World.Bounds()}
}

// Paddle returns the paddle's start position: horizontally centered,
// BottomOffset above the world bottom.
func (l Layout) Paddle() core.Vec2 {
	p := l.cfg.Paddle
	return core.V(-p.Width/2, l.bounds.Bottom()-p.BottomOffset-p.Height)
}

// Ball returns the ball's start position, centered above the paddle.
func (l Layout) Ball() core.Vec2 {
	size := l.cfg.Ball.Size
	centerY := l.Paddle().Y - launchGap
	return core.V(-size/2, centerY-size/2)
}

// BallVelocity returns the launch velocity: right and up at full speed.
func (l Layout) BallVelocity() core.Vec2 {
	s := l.cfg.Ball.Speed
	return core.V(s, -s)
}

// GridWidth returns the width of the brick grid including inner padding.
func (l Layout) GridWidth() float64 {
	b := l.cfg.Bricks
	if b.Cols == 0 {
		return 0
	}
	return float64(b.Cols)*(b.Width+b.Padding) - b.Padding
}

// Brick returns the position of the brick at (row, col). The grid is
// horizontally centered, OffsetTop below the world top.
func (l Layout) Brick(row, col int) core.Vec2 {
	b := l.cfg.Bricks
	left := -l.GridWidth() / 2
	top := l.bounds.Top() + b.OffsetTop
	return core.V(
		left+float64(col)*(b.Width+b.Padding),
		top+float64(row)*(b.Height+b.Padding),
	)
}

// BrickCount returns the number of bricks in a full grid.
func (l Layout) BrickCount() int {
	return l.cfg.Bricks.Rows * l.cfg.Bricks.Cols
}
