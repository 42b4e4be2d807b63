package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/arcade-engine/internal/collision"
	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/entity"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// Scene is the Breakout game: it lays out the entities and keeps score.
type Scene struct {
	cfg    config.BreakoutConfig
	layout Layout
	shape  collision.Shape

	score  int
	bricks int // Bricks still standing

	paddle *entity.Paddle
	ball   *entity.Ball
}

// New creates a Breakout scene from cfg.
func New(cfg config.BreakoutConfig) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	shape, err := collision.ParseShape(cfg.Ball.Shape)
	if err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	return &Scene{cfg: cfg, layout: NewLayout(cfg), shape: shape}, nil
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return config.Breakout
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Breakout"
}

// WorldBounds returns the playfield size.
func (s *Scene) WorldBounds() core.Bounds {
	return s.cfg.World.Bounds()
}

// Fitted reports that the whole playfield is always visible.
func (s *Scene) Fitted() bool {
	return true
}

// MaxDelta returns the configured dt cap.
func (s *Scene) MaxDelta() time.Duration {
	return s.cfg.Loop.MaxDelta()
}

// Score returns the points earned this round.
func (s *Scene) Score() int {
	return s.score
}

// BricksLeft returns how many bricks are still standing.
func (s *Scene) BricksLeft() int {
	return s.bricks
}

// Populate adds the paddle, the ball and the full brick grid, and resets
// the score. Entities are added in draw order.
func (s *Scene) Populate(l *engine.Loop) {
	s.score = 0
	s.bricks = 0

	s.paddle = entity.NewPaddle(
		s.layout.Paddle(),
		core.V(s.cfg.Paddle.Width, s.cfg.Paddle.Height),
		s.cfg.Paddle.Speed,
		s.cfg.Paddle.Color,
	)
	s.ball = entity.NewBall(
		s.layout.Ball(),
		core.V(s.cfg.Ball.Size, s.cfg.Ball.Size),
		s.layout.BallVelocity(),
		s.shape,
		s.cfg.Ball.Color,
	)
	l.Add(s.paddle)
	l.Add(s.ball)

	b := s.cfg.Bricks
	for col := range b.Cols {
		for row := range b.Rows {
			l.Add(entity.NewBrick(
				s.layout.Brick(row, col),
				core.V(b.Width, b.Height),
				row, col, b.Points, b.Color,
			))
			s.bricks++
		}
	}
}

// EntityRemoved awards a destroyed brick's points.
func (s *Scene) EntityRemoved(e entity.Entity) {
	switch e.Base().Kind {
	case entity.KindBrick:
		if br, ok := e.(*entity.Brick); ok {
			s.score += br.Points
		}
		s.bricks--
	case entity.KindPaddle, entity.KindBall, entity.KindWalker, entity.KindProp:
	}
}

// DrawOverlay draws the score line and the round prompts in screen space.
func (s *Scene) DrawOverlay(surf render.Surface, round core.RoundState) {
	cw, ch := render.CharSize(surf)
	surf.Text(cw, ch/2, fmt.Sprintf("Score: %d  Bricks: %d", s.score, s.bricks), core.ColorWhite)

	switch round {
	case core.RoundNotStarted:
		render.CenterText(surf, 0, "Press SPACE to start", core.ColorBrightYellow)
		render.CenterText(surf, 1, "Move: arrows or A/D", core.ColorGray)
	case core.RoundRunning:
		if s.bricks == 0 {
			render.CenterText(surf, 0, "CLEARED!", core.ColorBrightGreen)
		}
	case core.RoundOver:
		render.CenterText(surf, -1, "GAME OVER", core.ColorBrightRed)
		render.CenterText(surf, 0, fmt.Sprintf("Final score: %d", s.score), core.ColorWhite)
		render.CenterText(surf, 1, "Press SPACE to restart", core.ColorBrightYellow)
	}
}

func init() {
	registry.Register(registry.Info{
		ID:          config.Breakout,
		Title:       "Breakout",
		Description: "Clear the bricks, keep the ball off the floor",
	}, func(opts registry.Options) (engine.Scene, error) {
		cfg, err := config.LoadBreakout(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyBreakoutPreset(&cfg, opts.Preset)
		return New(cfg)
	})
}
