package collision

import (
	"testing"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

type box struct {
	shape  Shape
	bounds core.Rect
}

func (b box) Shape() Shape      { return b.shape }
func (b box) Bounds() core.Rect { return b.bounds }

func TestDetectIgnoresShapeNone(t *testing.T) {
	a := box{ShapeNone, core.NewRect(0, 0, 10, 10)}
	b := box{ShapeRect, core.NewRect(0, 0, 10, 10)}

	if _, ok := Detect(a, b); ok {
		t.Error("ShapeNone must never collide")
	}
	if _, ok := Detect(b, a); ok {
		t.Error("ShapeNone must never collide (reversed)")
	}

	unknown := box{Shape(42), core.NewRect(0, 0, 10, 10)}
	if _, ok := Detect(unknown, b); ok {
		t.Error("unknown shapes are treated as non-colliding")
	}
}

func TestDetectRectRect(t *testing.T) {
	a := box{ShapeRect, core.NewRect(8, 1, 10, 10)}
	b := box{ShapeRect, core.NewRect(0, 0, 10, 10)}

	res, ok := Detect(a, b)
	if !ok {
		t.Fatal("expected a hit")
	}
	if res != (Result{DX: 2}) {
		t.Errorf("Detect() = %+v, expected DX=2", res)
	}
}

func TestDetectCircleCornerMiss(t *testing.T) {
	// Bounding boxes overlap at the corner but the circle does not reach
	ball := box{ShapeCircle, core.NewRect(9, 9, 10, 10)}
	brick := box{ShapeRect, core.NewRect(0, 0, 10, 10)}

	if _, ok := Detect(ball, brick); ok {
		t.Error("circle should miss the rect corner")
	}
	if _, ok := Detect(brick, ball); ok {
		t.Error("circle should miss the rect corner (reversed)")
	}
}

func TestDetectCircleSideHit(t *testing.T) {
	ball := box{ShapeCircle, core.NewRect(2, 8, 6, 6)}
	brick := box{ShapeRect, core.NewRect(0, 0, 10, 10)}

	res, ok := Detect(ball, brick)
	if !ok {
		t.Fatal("expected a hit")
	}
	if res.DX != 0 || res.DY <= 0 {
		t.Errorf("expected downward push, got %+v", res)
	}

	back, ok := Detect(brick, ball)
	if !ok || back != res.Neg() {
		t.Errorf("reversed Detect() = %+v, expected %+v", back, res.Neg())
	}
}

func TestDetectCircleCircle(t *testing.T) {
	a := box{ShapeCircle, core.NewRect(0, 0, 10, 10)}
	near := box{ShapeCircle, core.NewRect(8, 0, 10, 10)}
	diag := box{ShapeCircle, core.NewRect(8, 8, 10, 10)}

	if _, ok := Detect(a, near); !ok {
		t.Error("overlapping circles should collide")
	}
	if _, ok := Detect(a, diag); ok {
		t.Error("circles whose boxes only clip at the corner should not collide")
	}
}

func TestParseShape(t *testing.T) {
	for _, want := range []Shape{ShapeNone, ShapeRect, ShapeCircle} {
		got, err := ParseShape(want.String())
		if err != nil || got != want {
			t.Errorf("ParseShape(%q) = %v, %v", want.String(), got, err)
		}
	}
	if _, err := ParseShape("triangle"); err == nil {
		t.Error("ParseShape(triangle) should fail")
	}
}
