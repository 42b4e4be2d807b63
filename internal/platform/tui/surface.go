package tui

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// Virtual pixels per terminal cell. Cells are about twice as tall as they
// are wide, so a square in world space stays square on screen.
const (
	CellW = 10
	CellH = 20
)

const (
	blockRune = '█'
	dotRune   = '●'
)

// Surface rasterizes drawing calls into a cell Screen. The viewport is
// measured in virtual pixels so scenes and the camera work in the same
// units as on the window back end.
type Surface struct {
	render.Stack
	screen *core.Screen
}

// NewSurface creates a surface drawing into screen.
func NewSurface(screen *core.Screen) *Surface {
	return &Surface{Stack: render.NewStack(), screen: screen}
}

// Screen returns the cell buffer.
func (s *Surface) Screen() *core.Screen {
	return s.screen
}

// Size returns the viewport size in virtual pixels.
func (s *Surface) Size() (w, h float64) {
	return float64(s.screen.Width() * CellW), float64(s.screen.Height() * CellH)
}

// CharSize returns the size of one cell.
func (s *Surface) CharSize() (w, h float64) {
	return CellW, CellH
}

// Clear blanks every cell.
func (s *Surface) Clear() {
	s.screen.Clear()
}

// FillRect fills every cell whose center lies inside the transformed
// rectangle. A rectangle too thin to cover a center still fills the cell
// under its midpoint.
func (s *Surface) FillRect(x, y, w, h float64, c core.Color) {
	r := s.Current().MapRect(core.NewRect(x, y, w, h))
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, x1 := span(r.X, r.Right(), CellW, s.screen.Width())
	y0, y1 := span(r.Y, r.Bottom(), CellH, s.screen.Height())
	s.screen.FillRect(core.CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, blockRune, c)
}

// FillCircle fills every cell whose center lies inside the transformed
// circle. A circle smaller than a cell becomes a single dot.
func (s *Surface) FillCircle(cx, cy, r float64, c core.Color) {
	m := s.Current()
	center := m.Apply(core.V(cx, cy))
	radius := r * m.ScaleX()
	if radius <= 0 {
		return
	}

	x0, x1 := span(center.X-radius, center.X+radius, CellW, s.screen.Width())
	y0, y1 := span(center.Y-radius, center.Y+radius, CellH, s.screen.Height())
	filled := 0
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			p := core.V((float64(col)+0.5)*CellW, (float64(row)+0.5)*CellH)
			if p.Sub(center).Len() < radius {
				s.screen.Set(col, row, blockRune, c)
				filled++
			}
		}
	}
	if filled == 0 {
		s.screen.Set(int(math.Floor(center.X/CellW)), int(math.Floor(center.Y/CellH)), dotRune, c)
	}
}

// Text writes a line of text; y is the vertical middle of the line.
func (s *Surface) Text(x, y float64, text string, c core.Color) {
	p := s.Current().Apply(core.V(x, y))
	s.screen.DrawText(int(math.Floor(p.X/CellW)), int(math.Floor(p.Y/CellH)), text, c)
}

// span returns the half-open cell range [a, b) whose centers lie in
// [lo, hi), clipped to [0, limit). When no center is covered it returns
// the cell holding the midpoint.
func span(lo, hi, size float64, limit int) (a, b int) {
	a = int(math.Ceil(lo/size - 0.5))
	b = int(math.Ceil(hi/size - 0.5))
	if b <= a {
		a = int(math.Floor((lo + hi) / 2 / size))
		b = a + 1
	}
	return max(a, 0), min(b, limit)
}
