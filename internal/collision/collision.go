// Package collision implements narrow-phase collision detection between
// axis-aligned rectangles and circles.
//
// Every function is pure: nothing is mutated, and callers apply any
// displacement or velocity change themselves.
package collision

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Shape tags how an entity participates in collision.
type Shape int

const (
	ShapeNone   Shape = iota // Never collides
	ShapeRect                // Axis-aligned box
	ShapeCircle              // Circle inscribed in the entity's box
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// ParseShape resolves a shape name ("none", "rect" or "circle").
func ParseShape(name string) (Shape, error) {
	for _, sh := range []Shape{ShapeNone, ShapeRect, ShapeCircle} {
		if sh.String() == name {
			return sh, nil
		}
	}
	return ShapeNone, fmt.Errorf("collision: unknown shape %q", name)
}

// Collides reports whether the shape takes part in collision at all.
// Unknown values are treated like ShapeNone.
func (s Shape) Collides() bool {
	return s == ShapeRect || s == ShapeCircle
}

// Result is a penetration vector: the minimal displacement that separates
// the first shape from the second. Exactly one axis is nonzero.
type Result struct {
	DX, DY float64
}

// Neg returns the result as seen from the other side of the pair.
func (r Result) Neg() Result {
	return Result{DX: -r.DX, DY: -r.DY}
}

// Vec returns the penetration as a vector.
func (r Result) Vec() core.Vec2 {
	return core.Vec2{X: r.DX, Y: r.DY}
}

// DominantX reports whether the X component has the larger magnitude,
// i.e. the collision normal is horizontal.
func (r Result) DominantX() bool {
	return math.Abs(r.DX) > math.Abs(r.DY)
}

// Circle is a circle given by center and radius.
type Circle struct {
	Center core.Vec2
	R      float64
}

// CircleIn returns the circle inscribed in r, using the smaller extent.
func CircleIn(r core.Rect) Circle {
	return Circle{Center: r.Center(), R: math.Min(r.W, r.H) / 2}
}

// Bounds returns the circle's bounding box.
func (c Circle) Bounds() core.Rect {
	return core.RectAround(c.Center, c.R*2, c.R*2)
}

// OverlapsRect reports whether two boxes overlap strictly on both axes.
// Touching edges (zero gap) is not a collision.
func OverlapsRect(a, b core.Rect) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// OverlapsCircleRect reports whether a circle overlaps a box. The circle's
// center is clamped to the box to find the nearest point; a hit requires
// the squared distance to that point to be strictly less than r².
func OverlapsCircleRect(c Circle, r core.Rect) bool {
	nx := core.ClampF(c.Center.X, r.X, r.Right())
	ny := core.ClampF(c.Center.Y, r.Y, r.Bottom())
	dx := c.Center.X - nx
	dy := c.Center.Y - ny
	return dx*dx+dy*dy < c.R*c.R
}

// OverlapsCircles reports whether two circles overlap strictly.
func OverlapsCircles(a, b Circle) bool {
	dx := a.Center.X - b.Center.X
	dy := a.Center.Y - b.Center.Y
	rr := a.R + b.R
	return dx*dx+dy*dy < rr*rr
}

// ResolveRectRect computes the penetration of a into b.
//
// The separating axis is the one with the smaller overlap (minimum
// translation vector). On an exact tie X wins. The sign follows the
// center delta a-b, so adding the result to a pushes it out of b.
// When the centers coincide on the chosen axis the sign comes from the
// other axis, then from the sizes, so swapping a and b always negates the
// result. Only identical boxes get a fixed positive push.
// ok is false unless the boxes overlap strictly on both axes.
func ResolveRectRect(a, b core.Rect) (res Result, ok bool) {
	ca, cb := a.Center(), b.Center()
	dx := ca.X - cb.X
	dy := ca.Y - cb.Y

	ha, hb := a.HalfExtents(), b.HalfExtents()
	overlapX := ha.X + hb.X - math.Abs(dx)
	overlapY := ha.Y + hb.Y - math.Abs(dy)
	if overlapX <= 0 || overlapY <= 0 {
		return Result{}, false
	}

	if overlapX <= overlapY {
		return Result{DX: pushSign(dx, dy, a.W-b.W, a.H-b.H) * overlapX}, true
	}
	return Result{DY: pushSign(dy, dx, a.H-b.H, a.W-b.W) * overlapY}, true
}

// pushSign returns the sign of the first nonzero difference, or +1 when all
// are zero. Every difference is a-b, so it flips when the pair is swapped.
func pushSign(diffs ...float64) float64 {
	for _, d := range diffs {
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
	}
	return 1
}
