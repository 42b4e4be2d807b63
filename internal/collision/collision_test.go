package collision

import (
	"testing"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

func TestOverlapsRect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     core.Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        core.NewRect(0, 0, 10, 10),
			b:        core.NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "disjoint horizontal",
			a:        core.NewRect(0, 0, 10, 10),
			b:        core.NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "disjoint vertical",
			a:        core.NewRect(0, 0, 10, 10),
			b:        core.NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "overlap on x only",
			a:        core.NewRect(0, 0, 10, 10),
			b:        core.NewRect(5, 20, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal edge",
			a:        core.NewRect(0, 0, 10, 10),
			b:        core.NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching vertical edge",
			a:        core.NewRect(0, 0, 10, 10),
			b:        core.NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "touching corner",
			a:        core.NewRect(0, 0, 10, 10),
			b:        core.NewRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        core.NewRect(0, 0, 20, 20),
			b:        core.NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        core.NewRect(0, 0, 10, 10),
			b:        core.NewRect(9.999, 9.999, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OverlapsRect(tc.a, tc.b); got != tc.expected {
				t.Errorf("OverlapsRect() = %v, expected %v", got, tc.expected)
			}
			if got := OverlapsRect(tc.b, tc.a); got != tc.expected {
				t.Errorf("OverlapsRect() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestOverlapsCircleRect(t *testing.T) {
	box := core.NewRect(0, 0, 10, 10)

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"center inside", Circle{Center: core.V(5, 5), R: 1}, true},
		{"center inside tiny radius", Circle{Center: core.V(1, 9), R: 0.001}, true},
		{"distance equals radius on side", Circle{Center: core.V(13, 5), R: 3}, false},
		{"distance equals radius at corner", Circle{Center: core.V(13, 14), R: 5}, false},
		{"just inside radius", Circle{Center: core.V(12.9, 5), R: 3}, true},
		{"far away", Circle{Center: core.V(50, 50), R: 3}, false},
		{"diagonal miss near corner", Circle{Center: core.V(12, 12), R: 2.8}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OverlapsCircleRect(tc.c, box); got != tc.expected {
				t.Errorf("OverlapsCircleRect(%+v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestOverlapsCircles(t *testing.T) {
	a := Circle{Center: core.V(0, 0), R: 2}

	if !OverlapsCircles(a, Circle{Center: core.V(3, 0), R: 2}) {
		t.Error("overlapping circles should collide")
	}
	if OverlapsCircles(a, Circle{Center: core.V(4, 0), R: 2}) {
		t.Error("tangent circles should not collide")
	}
}

func TestResolveRectRectIdenticalSquares(t *testing.T) {
	a := core.RectAround(core.V(0, 0), 1, 1)
	b := core.RectAround(core.V(0, 0), 1, 1)

	res, ok := ResolveRectRect(a, b)
	if !ok {
		t.Fatal("identical squares should collide")
	}
	if res.DY != 0 {
		t.Errorf("tie should choose X axis, got DY = %v", res.DY)
	}
	if res.DX != 1 && res.DX != -1 {
		t.Errorf("penetration magnitude = %v, expected 1", res.DX)
	}
}

func TestResolveRectRectAxisChoice(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Rect
		want Result
	}{
		{
			// a overlaps b's left edge by 2 and vertically by 8
			name: "shallow from the left",
			a:    core.NewRect(-8, 1, 10, 10),
			b:    core.NewRect(0, 0, 10, 10),
			want: Result{DX: -2},
		},
		{
			name: "shallow from the right",
			a:    core.NewRect(8, 1, 10, 10),
			b:    core.NewRect(0, 0, 10, 10),
			want: Result{DX: 2},
		},
		{
			name: "shallow from above",
			a:    core.NewRect(1, -7, 10, 10),
			b:    core.NewRect(0, 0, 10, 10),
			want: Result{DY: -3},
		},
		{
			name: "shallow from below",
			a:    core.NewRect(1, 9, 10, 10),
			b:    core.NewRect(0, 0, 10, 10),
			want: Result{DY: 1},
		},
		{
			name: "exact tie prefers x",
			a:    core.NewRect(7, 7, 10, 10),
			b:    core.NewRect(0, 0, 10, 10),
			want: Result{DX: 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ResolveRectRect(tc.a, tc.b)
			if !ok {
				t.Fatal("expected a collision")
			}
			if got != tc.want {
				t.Errorf("ResolveRectRect() = %+v, expected %+v", got, tc.want)
			}
			if got.DX != 0 && got.DY != 0 {
				t.Errorf("penetration must have a single axis, got %+v", got)
			}
		})
	}
}

func TestResolveRectRectNoHit(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Rect
	}{
		{"disjoint", core.NewRect(0, 0, 10, 10), core.NewRect(20, 20, 5, 5)},
		{"touching", core.NewRect(0, 0, 10, 10), core.NewRect(10, 0, 10, 10)},
		{"x overlap only", core.NewRect(0, 0, 10, 10), core.NewRect(5, 30, 10, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if res, ok := ResolveRectRect(tc.a, tc.b); ok {
				t.Errorf("ResolveRectRect() = %+v, expected no hit", res)
			}
		})
	}
}

func TestResolveRectRectAntisymmetric(t *testing.T) {
	base := core.NewRect(0, 0, 40, 20)
	others := []core.Rect{
		core.NewRect(30, 5, 20, 20),
		core.NewRect(-15, -10, 20, 15),
		core.NewRect(10, 15, 5, 30),
		core.NewRect(-3, 2, 8, 8),
		core.NewRect(5, -18, 30, 20),
		core.NewRect(37.5, 17.5, 5, 5),
		// Same center on the separating axis
		core.NewRect(10, -20, 20, 60),
		core.NewRect(-20, 5, 80, 10),
		core.NewRect(18, -30, 4, 70),
	}

	for _, o := range others {
		ab, okAB := ResolveRectRect(base, o)
		ba, okBA := ResolveRectRect(o, base)
		if okAB != okBA {
			t.Fatalf("hit mismatch for %+v: %v vs %v", o, okAB, okBA)
		}
		if !okAB {
			t.Fatalf("expected %+v to overlap the base rect", o)
		}
		if ab != ba.Neg() {
			t.Errorf("ResolveRectRect(A,B) = %+v, -ResolveRectRect(B,A) = %+v", ab, ba.Neg())
		}
	}
}

func TestResolveRectRectSharedCenterAxis(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Rect
		want Result
	}{
		{"offset on the other axis", core.NewRect(0, 0, 10, 20), core.NewRect(0, 1, 10, 20), Result{DX: -10}},
		{"offset and different widths", core.NewRect(0, 0, 4, 40), core.NewRect(-1, 3, 6, 40), Result{DX: -5}},
		{"same center, narrower", core.NewRect(2, 0, 6, 10), core.NewRect(0, 0, 10, 10), Result{DX: -8}},
		{"same center, wider", core.NewRect(0, 0, 10, 10), core.NewRect(2, 0, 6, 10), Result{DX: 8}},
		{"identical", core.NewRect(0, 0, 10, 10), core.NewRect(0, 0, 10, 10), Result{DX: 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ab, ok := ResolveRectRect(tc.a, tc.b)
			if !ok {
				t.Fatal("expected a collision")
			}
			if ab != tc.want {
				t.Errorf("ResolveRectRect(A,B) = %+v, expected %+v", ab, tc.want)
			}
			if tc.a == tc.b {
				return
			}
			if ba, _ := ResolveRectRect(tc.b, tc.a); ab != ba.Neg() {
				t.Errorf("ResolveRectRect(B,A) = %+v, expected %+v", ba, ab.Neg())
			}
		})
	}
}

func TestResolvePushOutSeparates(t *testing.T) {
	a := core.NewRect(3, 4, 10, 10)
	b := core.NewRect(0, 0, 10, 10)

	res, ok := ResolveRectRect(a, b)
	if !ok {
		t.Fatal("expected a collision")
	}
	moved := core.NewRect(a.X+res.DX, a.Y+res.DY, a.W, a.H)
	if OverlapsRect(moved, b) {
		t.Errorf("applying %+v should separate the boxes, got %+v", res, moved)
	}
}

func TestResultHelpers(t *testing.T) {
	r := Result{DX: -3}
	if r.Neg() != (Result{DX: 3}) {
		t.Errorf("Neg() = %+v", r.Neg())
	}
	if !r.DominantX() {
		t.Error("DominantX() should be true for a horizontal result")
	}
	if (Result{DY: 2}).DominantX() {
		t.Error("DominantX() should be false for a vertical result")
	}
}
