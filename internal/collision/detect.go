package collision

import "github.com/vovakirdan/arcade-engine/internal/core"

// Collider is anything with a shape tag and a bounding box.
type Collider interface {
	Shape() Shape
	Bounds() core.Rect
}

// Detect runs the narrow-phase test for a shape pair and returns the
// penetration of a into b.
//
// Rect pairs use ResolveRectRect directly. When a circle is involved the
// exact circle test decides whether there is a hit, and the penetration is
// taken from the bounding boxes so the result still has a single axis.
func Detect(a, b Collider) (Result, bool) {
	sa, sb := a.Shape(), b.Shape()
	if !sa.Collides() || !sb.Collides() {
		return Result{}, false
	}

	ra, rb := a.Bounds(), b.Bounds()

	switch {
	case sa == ShapeRect && sb == ShapeRect:
		return ResolveRectRect(ra, rb)
	case sa == ShapeCircle && sb == ShapeRect:
		if !OverlapsCircleRect(CircleIn(ra), rb) {
			return Result{}, false
		}
	case sa == ShapeRect && sb == ShapeCircle:
		if !OverlapsCircleRect(CircleIn(rb), ra) {
			return Result{}, false
		}
	case sa == ShapeCircle && sb == ShapeCircle:
		if !OverlapsCircles(CircleIn(ra), CircleIn(rb)) {
			return Result{}, false
		}
	}

	return ResolveRectRect(ra, rb)
}
