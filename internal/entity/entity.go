// Package entity defines the simulation entities driven by the engine loop:
// a shared Body record plus the paddle, ball, brick, walker and prop variants.
//
// Positions are the TOP-LEFT corner of the entity's box. Collision code
// derives centers from Bounds(), never from Pos directly.
package entity

import (
	"github.com/vovakirdan/arcade-engine/internal/collision"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// Kind is the capability tag collision policies match on.
type Kind int

const (
	KindProp   Kind = iota // Static decoration or backdrop
	KindPaddle             // Player-controlled horizontal paddle
	KindBall               // Bouncing projectile
	KindBrick              // Destructible block
	KindWalker             // Free-roaming player avatar
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindProp:
		return "prop"
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	case KindBrick:
		return "brick"
	case KindWalker:
		return "walker"
	default:
		return "unknown"
	}
}

// Entity is anything the loop can own.
type Entity interface {
	Base() *Body
}

// Updater is implemented by entities that change state each frame.
type Updater interface {
	Update(dt float64, ctx *Context)
}

// Drawer is implemented by entities that render themselves.
type Drawer interface {
	Draw(s render.Surface)
}

// CollisionHandler is implemented by entities that react to collisions.
// res is the penetration of this entity into other.
type CollisionHandler interface {
	OnCollision(other Entity, res collision.Result)
}

// Body is the base record shared by every entity.
type Body struct {
	Pos    core.Vec2 // Top-left corner
	Size   core.Vec2 // Width and height
	Vel    core.Vec2 // Units per second
	Shape  collision.Shape
	Color  core.Color
	Kind   Kind
	Hidden bool // Skipped by the draw pass

	removed bool
}

// Base returns the body itself; embedding types inherit it.
func (b *Body) Base() *Body {
	return b
}

// Bounds returns the entity's box.
func (b *Body) Bounds() core.Rect {
	return core.Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.X, H: b.Size.Y}
}

// Center returns the center of the entity's box.
func (b *Body) Center() core.Vec2 {
	return b.Bounds().Center()
}

// SetCenter moves the entity so its box is centered on c.
func (b *Body) SetCenter(c core.Vec2) {
	b.Pos = core.Vec2{X: c.X - b.Size.X/2, Y: c.Y - b.Size.Y/2}
}

// Remove marks the entity for removal. The loop sweeps marked entities
// after the collision pass, never during it.
func (b *Body) Remove() {
	b.removed = true
}

// Removed reports whether the entity is marked for removal.
func (b *Body) Removed() bool {
	return b.removed
}

// Hitbox adapts the body for the collision package.
func (b *Body) Hitbox() collision.Collider {
	return hitbox{b}
}

// Draw fills the entity's box with its color.
func (b *Body) Draw(s render.Surface) {
	s.FillRect(b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y, b.Color)
}

type hitbox struct{ b *Body }

func (h hitbox) Shape() collision.Shape { return h.b.Shape }
func (h hitbox) Bounds() core.Rect      { return h.b.Bounds() }

// Context is the read view an entity gets during Update.
// It replaces any back-reference from an entity to the loop.
type Context struct {
	Bounds core.Bounds     // World size, origin-centered
	Input  core.Input      // Keyboard snapshot
	Round  core.RoundState // Round phase at the start of this frame
	Others []Body          // Every active body as it was before this update pass

	endRound bool
}

// EndRound asks the loop to move the round to Over once the update pass
// has finished.
func (c *Context) EndRound() {
	c.endRound = true
}

// RoundEnded reports whether any entity asked to end the round.
func (c *Context) RoundEnded() bool {
	return c.endRound
}

// Running reports whether gameplay entities should act this frame.
func (c *Context) Running() bool {
	return c.Round == core.RoundRunning
}

// FirstOf returns the previous-frame body of the first entity of kind k.
func (c *Context) FirstOf(k Kind) (Body, bool) {
	for _, b := range c.Others {
		if b.Kind == k {
			return b, true
		}
	}
	return Body{}, false
}
