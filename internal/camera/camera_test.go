package camera

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

type box core.Rect

func (b *box) Bounds() core.Rect { return core.Rect(*b) }

func TestZoomClamped(t *testing.T) {
	tests := []struct {
		name string
		set  float64
		want float64
	}{
		{"too far in", 5.0, 2.5},
		{"too far out", -1.0, 0.3},
		{"inside range", 1.7, 1.7},
		{"lower edge", 0.3, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.SetZoom(tt.set)
			if c.Zoom != tt.want {
				t.Errorf("Zoom = %v, expected %v", c.Zoom, tt.want)
			}
		})
	}
}

func TestAdjustZoomStaysInRange(t *testing.T) {
	c := New()
	for range 100 {
		c.AdjustZoom(ZoomStep)
	}
	if c.Zoom != DefaultMaxZoom {
		t.Errorf("Zoom = %v after zooming in, expected %v", c.Zoom, DefaultMaxZoom)
	}
	for range 100 {
		c.AdjustZoom(-ZoomStep)
	}
	if c.Zoom != DefaultMinZoom {
		t.Errorf("Zoom = %v after zooming out, expected %v", c.Zoom, DefaultMinZoom)
	}
}

func TestFollowSmoothing(t *testing.T) {
	target := &box{X: 90, Y: -10, W: 20, H: 20} // center (100, 0)
	c := New()
	c.Follow(target)

	c.Update()
	if math.Abs(c.Pos.X-8) > 1e-9 || c.Pos.Y != 0 {
		t.Fatalf("Pos after one update = %v, expected (8, 0)", c.Pos)
	}

	// Distance shrinks by (1 - lerp) each update and never overshoots
	prev := 100 - c.Pos.X
	for range 50 {
		c.Update()
		d := 100 - c.Pos.X
		if d < 0 || d >= prev {
			t.Fatalf("remaining distance %v did not shrink from %v", d, prev)
		}
		if math.Abs(d-prev*(1-DefaultLerp)) > 1e-9 {
			t.Fatalf("remaining distance %v, expected %v", d, prev*(1-DefaultLerp))
		}
		prev = d
	}
}

func TestNoTargetIsNoop(t *testing.T) {
	c := New()
	c.Pos = core.V(3, 4)
	c.Update()
	c.SnapToTarget()
	if c.Pos != core.V(3, 4) {
		t.Errorf("Pos = %v, expected unchanged", c.Pos)
	}

	target := &box{W: 10, H: 10}
	c.Follow(target)
	if !c.Following(target) {
		t.Error("Following() should report the target")
	}
	c.Unfollow()
	c.Update()
	if c.Pos != core.V(3, 4) || c.Target() != nil {
		t.Errorf("Unfollow() should stop tracking, Pos=%v", c.Pos)
	}
}

func TestSnapToTarget(t *testing.T) {
	c := New()
	c.Follow(&box{X: 10, Y: 10, W: 4, H: 6})
	c.SnapToTarget()
	if c.Pos != core.V(12, 13) {
		t.Errorf("Pos = %v, expected (12, 13)", c.Pos)
	}
}

func TestApplyOrder(t *testing.T) {
	c := New()
	c.Pos = core.V(100, 50)
	c.SetZoom(2)

	rec := render.NewRecorder(800, 600)
	c.Apply(rec)

	ops := rec.Ops()
	want := []render.Op{
		{Kind: render.OpTranslate, X: 400, Y: 300},
		{Kind: render.OpScale, X: 2, Y: 2},
		{Kind: render.OpTranslate, X: -100, Y: -50},
	}
	if len(ops) != len(want) {
		t.Fatalf("Apply recorded %v", rec.Kinds())
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op %d = %+v, expected %+v", i, ops[i], want[i])
		}
	}

	// The camera position lands on the viewport center at any zoom
	if got := rec.Current().Apply(c.Pos); got != core.V(400, 300) {
		t.Errorf("camera focus drawn at %v, expected (400, 300)", got)
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	c := New()
	c.Pos = core.V(-250, 75)
	c.SetZoom(0.5)

	w := core.V(-200, 100)
	s := c.WorldToScreen(w, 640, 480)
	if s != core.V(345, 252.5) {
		t.Errorf("WorldToScreen = %v, expected (345, 252.5)", s)
	}
	back := c.ScreenToWorld(s, 640, 480)
	if back.Sub(w).Len() > 1e-9 {
		t.Errorf("ScreenToWorld = %v, expected %v", back, w)
	}
}

func TestFitScale(t *testing.T) {
	if got := FitScale(96, 32, 960, 640); got != 0.05 {
		t.Errorf("FitScale() = %v, expected 0.05", got)
	}
	if got := FitScale(1920, 1280, 960, 640); got != 2 {
		t.Errorf("FitScale() = %v, expected 2", got)
	}

	if got := FitScale(100, 100, 0, 10); got != 1 {
		t.Errorf("degenerate world should fit at 1, got %v", got)
	}
}
