// Package core provides fundamental types and utilities for the arcade engine.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged; callers never get NaN.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rect represents an axis-aligned bounding box in world units.
// X, Y is the top-left corner; Y grows downward like a canvas.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a rectangle of the given size centered on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// HalfExtents returns half the width and height.
func (r Rect) HalfExtents() Vec2 {
	return Vec2{X: r.W / 2, Y: r.H / 2}
}

// Bounds is the size of the playable world. The world is centered on the
// origin, so it spans [-W/2, W/2] horizontally and [-H/2, H/2] vertically.
type Bounds struct {
	W, H float64
}

// Left returns the x-coordinate of the left world edge.
func (b Bounds) Left() float64 { return -b.W / 2 }

// Right returns the x-coordinate of the right world edge.
func (b Bounds) Right() float64 { return b.W / 2 }

// Top returns the y-coordinate of the top world edge.
func (b Bounds) Top() float64 { return -b.H / 2 }

// Bottom returns the y-coordinate of the bottom world edge.
func (b Bounds) Bottom() float64 { return b.H / 2 }

// Rect returns the world area as a rectangle.
func (b Bounds) Rect() Rect {
	return Rect{X: b.Left(), Y: b.Top(), W: b.W, H: b.H}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sign returns -1, 0, or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
