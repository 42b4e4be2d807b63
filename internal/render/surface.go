// Package render defines the drawing surface the engine renders into and
// the transform bookkeeping shared by every back end.
package render

import "github.com/vovakirdan/arcade-engine/internal/core"

// Surface is a canvas-like drawing target.
//
// Coordinates passed to the fill and text primitives are transformed by the
// current affine transform, which is built up with Translate and Scale and
// scoped with Save and Restore.
type Surface interface {
	// Size returns the viewport size in surface units.
	Size() (w, h float64)

	// Clear erases the whole surface. It ignores the current transform.
	Clear()

	FillRect(x, y, w, h float64, c core.Color)
	FillCircle(cx, cy, r float64, c core.Color)

	// Text draws a single line of text. Only overlays use it.
	Text(x, y float64, s string, c core.Color)

	Save()
	Restore()
	Translate(dx, dy float64)
	Scale(sx, sy float64)
}
