package breakout

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/entity"
)

// Snapshot captures the observable state of a Breakout loop for replay
// checks and tests.
type Snapshot struct {
	Frame  uint64
	Round  core.RoundState
	Score  int
	Paddle core.Vec2
	Ball   core.Vec2
	BallV  core.Vec2

	// Standing bricks as row*cols+col, in loop order
	Bricks []int
}

// Snapshot returns the current state of l, which must be driven by s.
func (s *Scene) Snapshot(l *engine.Loop) Snapshot {
	snap := Snapshot{
		Frame: l.Frames(),
		Round: l.Round(),
		Score: s.score,
	}
	for _, e := range l.Entities() {
		b := e.Base()
		switch b.Kind {
		case entity.KindPaddle:
			snap.Paddle = b.Pos
		case entity.KindBall:
			snap.Ball = b.Pos
			snap.BallV = b.Vel
		case entity.KindBrick:
			if br, ok := e.(*entity.Brick); ok {
				snap.Bricks = append(snap.Bricks, br.Row*s.cfg.Bricks.Cols+br.Col)
			}
		case entity.KindWalker, entity.KindProp:
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Round) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	for _, v := range []float64{snap.Paddle.X, snap.Paddle.Y, snap.Ball.X, snap.Ball.Y, snap.BallV.X, snap.BallV.Y} {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.Bricks {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
