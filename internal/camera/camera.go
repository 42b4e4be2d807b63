// Package camera maps world coordinates to the viewport: it follows a
// target with exponential smoothing and applies a bounded zoom.
package camera

import (
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// Default tuning values.
const (
	DefaultLerp    = 0.08
	DefaultMinZoom = 0.3
	DefaultMaxZoom = 2.5
	ZoomStep       = 0.1
)

// Target is anything the camera can follow.
type Target interface {
	Bounds() core.Rect
}

// Camera is a 2D view: Pos is the world point shown at the viewport center.
type Camera struct {
	Pos     core.Vec2
	Zoom    float64
	MinZoom float64
	MaxZoom float64
	Lerp    float64 // Fraction of the remaining distance covered per update

	target Target
}

// New creates a camera at the origin with default tuning.
func New() *Camera {
	return &Camera{
		Zoom:    1,
		MinZoom: DefaultMinZoom,
		MaxZoom: DefaultMaxZoom,
		Lerp:    DefaultLerp,
	}
}

// Follow makes the camera track t.
func (c *Camera) Follow(t Target) {
	c.target = t
}

// Unfollow detaches the camera. Update becomes a no-op.
func (c *Camera) Unfollow() {
	c.target = nil
}

// Target returns the followed target, or nil.
func (c *Camera) Target() Target {
	return c.target
}

// Following reports whether t is the current target.
func (c *Camera) Following(t Target) bool {
	return c.target != nil && c.target == t
}

// Update moves the camera a fixed fraction of the way toward the target's
// center. The approach is frame-rate dependent.
func (c *Camera) Update() {
	if c.target == nil {
		return
	}
	goal := c.target.Bounds().Center()
	c.Pos = c.Pos.Add(goal.Sub(c.Pos).Scale(c.Lerp))
}

// SnapToTarget centers the camera on the target immediately.
func (c *Camera) SnapToTarget() {
	if c.target == nil {
		return
	}
	c.Pos = c.target.Bounds().Center()
}

// SetZoom sets the zoom, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(z float64) {
	c.Zoom = core.ClampF(z, c.MinZoom, c.MaxZoom)
}

// AdjustZoom changes the zoom by delta, clamped.
func (c *Camera) AdjustZoom(delta float64) {
	c.SetZoom(c.Zoom + delta)
}

// Apply installs the view transform on s: move the origin to the viewport
// center, scale by the zoom, then shift by the negated camera position.
// The order is fixed; swapping it makes zoom pivot around the wrong point.
func (c *Camera) Apply(s render.Surface) {
	c.ApplyScaled(s, 1)
}

// ApplyScaled is Apply with the zoom multiplied by base. Scenes that must
// always show the whole world pass FitScale as base.
func (c *Camera) ApplyScaled(s render.Surface, base float64) {
	w, h := s.Size()
	z := c.Zoom * base
	s.Translate(w/2, h/2)
	s.Scale(z, z)
	s.Translate(-c.Pos.X, -c.Pos.Y)
}

// Transform returns the transform Apply would install for a viewport.
func (c *Camera) Transform(viewW, viewH float64) render.Affine {
	return render.Identity().
		Translate(viewW/2, viewH/2).
		Scale(c.Zoom, c.Zoom).
		Translate(-c.Pos.X, -c.Pos.Y)
}

// WorldToScreen maps a world point into viewport coordinates.
func (c *Camera) WorldToScreen(p core.Vec2, viewW, viewH float64) core.Vec2 {
	return c.Transform(viewW, viewH).Apply(p)
}

// ScreenToWorld maps a viewport point back into the world.
func (c *Camera) ScreenToWorld(p core.Vec2, viewW, viewH float64) core.Vec2 {
	inv, ok := c.Transform(viewW, viewH).Invert()
	if !ok {
		return c.Pos
	}
	return inv.Apply(p)
}

// FitScale returns the uniform scale that shows a whole world of
// worldW x worldH inside a viewW x viewH viewport.
func FitScale(viewW, viewH, worldW, worldH float64) float64 {
	if worldW <= 0 || worldH <= 0 {
		return 1
	}
	return min(viewW/worldW, viewH/worldH)
}
