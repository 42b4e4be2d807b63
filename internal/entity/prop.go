package entity

import "github.com/vovakirdan/arcade-engine/internal/core"

// Prop is a static, non-colliding rectangle: backdrops and scenery.
type Prop struct {
	Body
}

// NewProp creates a prop covering r.
func NewProp(r core.Rect, color core.Color) *Prop {
	return &Prop{Body: Body{
		Pos:   core.V(r.X, r.Y),
		Size:  core.V(r.W, r.H),
		Color: color,
		Kind:  KindProp,
	}}
}
