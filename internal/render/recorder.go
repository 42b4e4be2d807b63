package render

import "github.com/vovakirdan/arcade-engine/internal/core"

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpCircle
	OpText
	OpSave
	OpRestore
	OpTranslate
	OpScale
)

// String returns a short name for the operation.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpText:
		return "text"
	case OpSave:
		return "save"
	case OpRestore:
		return "restore"
	case OpTranslate:
		return "translate"
	case OpScale:
		return "scale"
	default:
		return "unknown"
	}
}

// Op is one recorded call. Geometry is stored already transformed into
// screen space, so a display list can be replayed without the stack.
type Op struct {
	Kind   OpKind
	Rect   core.Rect // OpRect: screen-space box
	Center core.Vec2 // OpCircle, OpText: screen-space point
	Radius float64   // OpCircle: screen-space radius
	Text   string
	Color  core.Color
	X, Y   float64 // OpTranslate, OpScale: raw arguments
}

// Recorder is a Surface that keeps a display list instead of drawing.
// The window back end replays it each frame, and tests inspect it.
type Recorder struct {
	Stack
	w, h float64
	ops  []Op
}

// NewRecorder creates a recorder with the given viewport size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Stack: NewStack(), w: w, h: h}
}

// Resize changes the reported viewport size.
func (r *Recorder) Resize(w, h float64) {
	r.w, r.h = w, h
}

// Size returns the viewport size.
func (r *Recorder) Size() (float64, float64) {
	return r.w, r.h
}

// Clear drops everything recorded so far and starts a new display list.
func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.ops = append(r.ops, Op{Kind: OpClear})
}

// FillRect records a filled rectangle.
func (r *Recorder) FillRect(x, y, w, h float64, c core.Color) {
	box := r.Current().MapRect(core.NewRect(x, y, w, h))
	r.ops = append(r.ops, Op{Kind: OpRect, Rect: box, Color: c})
}

// FillCircle records a filled circle.
func (r *Recorder) FillCircle(cx, cy, radius float64, c core.Color) {
	m := r.Current()
	r.ops = append(r.ops, Op{
		Kind:   OpCircle,
		Center: m.Apply(core.V(cx, cy)),
		Radius: radius * m.ScaleX(),
		Color:  c,
	})
}

// Text records a line of text.
func (r *Recorder) Text(x, y float64, s string, c core.Color) {
	r.ops = append(r.ops, Op{
		Kind:   OpText,
		Center: r.Current().Apply(core.V(x, y)),
		Text:   s,
		Color:  c,
	})
}

// Save records and performs a save.
func (r *Recorder) Save() {
	r.Stack.Save()
	r.ops = append(r.ops, Op{Kind: OpSave})
}

// Restore records and performs a restore.
func (r *Recorder) Restore() {
	r.Stack.Restore()
	r.ops = append(r.ops, Op{Kind: OpRestore})
}

// Translate records and performs a translation.
func (r *Recorder) Translate(dx, dy float64) {
	r.Stack.Translate(dx, dy)
	r.ops = append(r.ops, Op{Kind: OpTranslate, X: dx, Y: dy})
}

// Scale records and performs a scale.
func (r *Recorder) Scale(sx, sy float64) {
	r.Stack.Scale(sx, sy)
	r.ops = append(r.ops, Op{Kind: OpScale, X: sx, Y: sy})
}

// Ops returns the recorded display list.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Kinds returns only the kinds of the recorded operations, in order.
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.ops))
	for i, op := range r.ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Replay draws the display list onto another surface in screen space.
// Transform operations are skipped because geometry is already mapped.
func (r *Recorder) Replay(dst Surface) {
	for _, op := range r.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear()
		case OpRect:
			dst.FillRect(op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H, op.Color)
		case OpCircle:
			dst.FillCircle(op.Center.X, op.Center.Y, op.Radius, op.Color)
		case OpText:
			dst.Text(op.Center.X, op.Center.Y, op.Text, op.Color)
		}
	}
}
