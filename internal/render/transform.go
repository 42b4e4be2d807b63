package render

import "github.com/vovakirdan/arcade-engine/internal/core"

// Affine is a 2D affine transform in canvas order:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translate returns m followed by a translation, applied in local space
// (the same composition a canvas context uses).
func (m Affine) Translate(dx, dy float64) Affine {
	m.E += m.A*dx + m.C*dy
	m.F += m.B*dx + m.D*dy
	return m
}

// Scale returns m with a local-space scale appended.
func (m Affine) Scale(sx, sy float64) Affine {
	m.A *= sx
	m.B *= sx
	m.C *= sy
	m.D *= sy
	return m
}

// Apply maps a point through the transform.
func (m Affine) Apply(p core.Vec2) core.Vec2 {
	return core.Vec2{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Invert returns the inverse transform. A singular transform (zero scale)
// returns the identity and false.
func (m Affine) Invert() (Affine, bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity(), false
	}
	inv := Affine{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
	}
	inv.E = -(inv.A*m.E + inv.C*m.F)
	inv.F = -(inv.B*m.E + inv.D*m.F)
	return inv, true
}

// MapRect maps an axis-aligned rectangle. Only translate and scale are ever
// composed, so the image is still axis-aligned; negative scales are
// normalized to a positive width and height.
func (m Affine) MapRect(r core.Rect) core.Rect {
	p0 := m.Apply(core.Vec2{X: r.X, Y: r.Y})
	p1 := m.Apply(core.Vec2{X: r.Right(), Y: r.Bottom()})
	x0, x1 := min(p0.X, p1.X), max(p0.X, p1.X)
	y0, y1 := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
	return core.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// ScaleX returns the horizontal scale factor, used for radii.
func (m Affine) ScaleX() float64 {
	if m.A < 0 {
		return -m.A
	}
	return m.A
}

// Stack keeps the current transform plus the saved states.
// Back ends embed it to get Save, Restore, Translate and Scale for free.
type Stack struct {
	cur   Affine
	saved []Affine
}

// NewStack creates a stack holding the identity transform.
func NewStack() Stack {
	return Stack{cur: Identity()}
}

// Current returns the active transform.
func (s *Stack) Current() Affine {
	return s.cur
}

// Depth returns how many states are saved.
func (s *Stack) Depth() int {
	return len(s.saved)
}

// Save pushes the current transform.
func (s *Stack) Save() {
	s.saved = append(s.saved, s.cur)
}

// Restore pops the last saved transform. An unbalanced Restore is ignored.
func (s *Stack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Translate appends a translation to the current transform.
func (s *Stack) Translate(dx, dy float64) {
	s.cur = s.cur.Translate(dx, dy)
}

// Scale appends a scale to the current transform.
func (s *Stack) Scale(sx, sy float64) {
	s.cur = s.cur.Scale(sx, sy)
}

// ResetTransform drops saved states and returns to identity.
func (s *Stack) ResetTransform() {
	s.cur = Identity()
	s.saved = s.saved[:0]
}
