package entity

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-engine/internal/collision"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

func running(bounds core.Bounds, keys ...string) *Context {
	k := core.NewKeys(0)
	for _, name := range keys {
		k.Press(name)
	}
	return &Context{Bounds: bounds, Input: k, Round: core.RoundRunning}
}

func TestPaddleMovement(t *testing.T) {
	bounds := core.Bounds{W: 960, H: 640}

	tests := []struct {
		name  string
		start float64
		keys  []string
		dt    float64
		want  float64
	}{
		{"left arrow", 0, []string{"ArrowLeft"}, 0.1, -60},
		{"right letter", 0, []string{"d"}, 0.1, 60},
		{"both cancel", 0, []string{"a", "arrowright"}, 0.1, 0},
		{"nothing held", 10, nil, 0.1, 10},
		{"clamped left", -470, []string{"a"}, 1, -480},
		{"clamped right", 300, []string{"d"}, 1, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaddle(core.V(tt.start, 280), core.V(120, 20), 600, core.ColorCyan)
			p.Update(tt.dt, running(bounds, tt.keys...))
			if math.Abs(p.Pos.X-tt.want) > 1e-9 {
				t.Errorf("Pos.X = %v, expected %v", p.Pos.X, tt.want)
			}
		})
	}
}

func TestPaddleIdleUnlessRunning(t *testing.T) {
	p := NewPaddle(core.V(0, 0), core.V(120, 20), 600, core.ColorCyan)
	ctx := running(core.Bounds{W: 960, H: 640}, "a")
	ctx.Round = core.RoundNotStarted

	p.Update(0.5, ctx)
	if p.Pos.X != 0 {
		t.Errorf("paddle moved to %v before the round started", p.Pos.X)
	}

	ctx.Round = core.RoundOver
	p.Update(0.5, ctx)
	if p.Pos.X != 0 {
		t.Errorf("paddle moved to %v after the round ended", p.Pos.X)
	}
}

func TestBallTopWall(t *testing.T) {
	b := NewBall(core.V(0, -290), core.V(24, 24), core.V(0, -400), collision.ShapeRect, core.ColorMagenta)
	ctx := running(core.Bounds{W: 800, H: 600})

	b.Update(0.05, ctx)

	if b.Pos.Y != -300 {
		t.Errorf("Pos.Y = %v, expected clamp to -300", b.Pos.Y)
	}
	if b.Vel.Y != 400 {
		t.Errorf("Vel.Y = %v, expected 400", b.Vel.Y)
	}
	if ctx.RoundEnded() {
		t.Error("top wall should not end the round")
	}
}

func TestBallSideWalls(t *testing.T) {
	ctx := running(core.Bounds{W: 600, H: 600})

	right := NewBall(core.V(270, 0), core.V(24, 24), core.V(400, 0), collision.ShapeRect, core.ColorMagenta)
	right.Update(0.1, ctx)
	if right.Pos.X != 276 || right.Vel.X != -400 {
		t.Errorf("right wall: Pos.X=%v Vel.X=%v, expected 276 and -400", right.Pos.X, right.Vel.X)
	}

	left := NewBall(core.V(-290, 0), core.V(24, 24), core.V(-400, 0), collision.ShapeRect, core.ColorMagenta)
	left.Update(0.1, ctx)
	if left.Pos.X != -300 || left.Vel.X != 400 {
		t.Errorf("left wall: Pos.X=%v Vel.X=%v, expected -300 and 400", left.Pos.X, left.Vel.X)
	}
}

func TestBallBottomEndsRound(t *testing.T) {
	b := NewBall(core.V(0, 270), core.V(24, 24), core.V(0, 400), collision.ShapeRect, core.ColorMagenta)
	ctx := running(core.Bounds{W: 600, H: 600})

	b.Update(0.1, ctx)

	if !ctx.RoundEnded() {
		t.Error("ball crossing the bottom edge should end the round")
	}
	if b.Vel.Y != 400 {
		t.Errorf("bottom edge must not reflect, Vel.Y = %v", b.Vel.Y)
	}
}

func TestBallFrozenUnlessRunning(t *testing.T) {
	b := NewBall(core.V(5, 5), core.V(24, 24), core.V(400, -400), collision.ShapeRect, core.ColorMagenta)
	ctx := running(core.Bounds{W: 600, H: 600})
	ctx.Round = core.RoundNotStarted

	b.Update(1, ctx)
	if b.Pos != core.V(5, 5) {
		t.Errorf("ball moved to %v before the round started", b.Pos)
	}
}

func TestBallCollisionResponse(t *testing.T) {
	paddle := NewPaddle(core.V(0, 0), core.V(120, 20), 600, core.ColorCyan)
	prop := NewProp(core.NewRect(0, 0, 10, 10), core.ColorGray)

	tests := []struct {
		name    string
		other   Entity
		res     collision.Result
		wantPos core.Vec2
		wantVel core.Vec2
	}{
		{"paddle from above", paddle, collision.Result{DY: -5}, core.V(0, -5), core.V(100, -400)},
		{"brick side", NewBrick(core.V(0, 0), core.V(75, 20), 0, 0, 10, core.ColorOrange), collision.Result{DX: 3}, core.V(3, 0), core.V(100, 400)},
		{"brick left side", NewBrick(core.V(0, 0), core.V(75, 20), 0, 0, 10, core.ColorOrange), collision.Result{DX: -2}, core.V(-2, 0), core.V(-100, 400)},
		{"prop ignored", prop, collision.Result{DY: -5}, core.V(0, 0), core.V(100, 400)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(core.V(0, 0), core.V(24, 24), core.V(100, 400), collision.ShapeRect, core.ColorMagenta)
			b.OnCollision(tt.other, tt.res)
			if b.Pos != tt.wantPos {
				t.Errorf("Pos = %v, expected %v", b.Pos, tt.wantPos)
			}
			if b.Vel != tt.wantVel {
				t.Errorf("Vel = %v, expected %v", b.Vel, tt.wantVel)
			}
		})
	}
}

func TestBrickRemovedByBall(t *testing.T) {
	ball := NewBall(core.V(0, 0), core.V(24, 24), core.V(0, -400), collision.ShapeRect, core.ColorMagenta)
	paddle := NewPaddle(core.V(0, 0), core.V(120, 20), 600, core.ColorCyan)

	brick := NewBrick(core.V(0, 0), core.V(75, 20), 1, 2, 10, core.ColorOrange)
	brick.OnCollision(paddle, collision.Result{DY: 1})
	if brick.Removed() {
		t.Error("paddle contact should not remove a brick")
	}

	brick.OnCollision(ball, collision.Result{DY: 1})
	if !brick.Removed() {
		t.Error("ball contact should mark the brick for removal")
	}
}

func TestWalkerDiagonalNormalized(t *testing.T) {
	w := NewWalker(core.V(0, 0), 40, 300, core.ColorRoyalBlue)
	ctx := running(core.Bounds{W: 10000, H: 10000}, "arrowright", "s")

	start := w.Center()
	w.Update(1, ctx)
	moved := w.Center().Sub(start)

	if math.Abs(moved.Len()-300) > 1e-9 {
		t.Errorf("diagonal step length = %v, expected 300", moved.Len())
	}
	if moved.X <= 0 || moved.Y <= 0 {
		t.Errorf("diagonal step = %v, expected down-right", moved)
	}
}

func TestWalkerIdleAndClamped(t *testing.T) {
	w := NewWalker(core.V(0, 0), 40, 300, core.ColorRoyalBlue)
	ctx := running(core.Bounds{W: 200, H: 200})
	ctx.Round = core.RoundNotStarted

	w.Update(1, ctx)
	if w.Pos != core.V(-20, -20) || w.Vel != (core.Vec2{}) {
		t.Errorf("idle walker moved: Pos=%v Vel=%v", w.Pos, w.Vel)
	}

	// Walkers ignore the round state, and stay inside the world
	ctx.Input = running(ctx.Bounds, "w", "a").Input
	w.Update(10, ctx)
	if w.Pos != core.V(-100, -100) {
		t.Errorf("Pos = %v, expected clamp to (-100, -100)", w.Pos)
	}
}

func TestBodyHelpers(t *testing.T) {
	b := Body{Pos: core.V(10, 20), Size: core.V(30, 40), Shape: collision.ShapeRect}

	if got := b.Center(); got != core.V(25, 40) {
		t.Errorf("Center() = %v, expected (25, 40)", got)
	}

	hb := b.Hitbox()
	if hb.Shape() != collision.ShapeRect || hb.Bounds() != core.NewRect(10, 20, 30, 40) {
		t.Errorf("Hitbox() = %v %+v", hb.Shape(), hb.Bounds())
	}

	b.SetCenter(core.V(0, 0))
	if b.Pos != core.V(-15, -20) {
		t.Errorf("SetCenter moved Pos to %v", b.Pos)
	}

	if b.Removed() {
		t.Error("new body should not be removed")
	}
	b.Remove()
	if !b.Removed() {
		t.Error("Remove() should mark the body")
	}
}

func TestDrawShapes(t *testing.T) {
	rec := render.NewRecorder(100, 100)

	square := NewBall(core.V(0, 0), core.V(24, 24), core.V(0, 0), collision.ShapeRect, core.ColorMagenta)
	square.Draw(rec)
	round := NewBall(core.V(0, 0), core.V(24, 24), core.V(0, 0), collision.ShapeCircle, core.ColorMagenta)
	round.Draw(rec)

	ops := rec.Ops()
	if len(ops) != 2 || ops[0].Kind != render.OpRect || ops[1].Kind != render.OpCircle {
		t.Fatalf("recorded %v, expected [rect circle]", rec.Kinds())
	}
	if ops[1].Center != core.V(12, 12) || ops[1].Radius != 12 {
		t.Errorf("circle at %v r=%v, expected (12, 12) r=12", ops[1].Center, ops[1].Radius)
	}
}

func TestContextFirstOf(t *testing.T) {
	ctx := &Context{Others: []Body{
		{Kind: KindBrick, Pos: core.V(1, 1)},
		{Kind: KindBall, Pos: core.V(2, 2)},
	}}

	b, ok := ctx.FirstOf(KindBall)
	if !ok || b.Pos != core.V(2, 2) {
		t.Errorf("FirstOf(ball) = %v, %v", b.Pos, ok)
	}
	if _, ok := ctx.FirstOf(KindWalker); ok {
		t.Error("FirstOf(walker) should report false")
	}
}
