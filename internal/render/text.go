package render

import (
	"unicode/utf8"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Default glyph size for surfaces that do not report one.
const (
	DefaultCharW = 6
	DefaultCharH = 16
)

// CharSizer is implemented by surfaces with a fixed-size font.
type CharSizer interface {
	CharSize() (w, h float64)
}

// CharSize returns the glyph size of s.
func CharSize(s Surface) (w, h float64) {
	if cs, ok := s.(CharSizer); ok {
		return cs.CharSize()
	}
	return DefaultCharW, DefaultCharH
}

// TextWidth returns how wide text renders on s.
func TextWidth(s Surface, text string) float64 {
	w, _ := CharSize(s)
	return w * float64(utf8.RuneCountInString(text))
}

// CenterText draws text horizontally centered on line row, counted in
// glyph heights from the vertical center of the viewport.
func CenterText(s Surface, row int, text string, c core.Color) {
	vw, vh := s.Size()
	_, ch := CharSize(s)
	x := (vw - TextWidth(s, text)) / 2
	y := vh/2 + float64(row)*ch
	s.Text(max(x, 0), y, text, c)
}
