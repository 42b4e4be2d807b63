package core

// Viewport is the drawable area and frame rate a back end runs a scene at.
// Sizes are cells for the terminal and pixels for the window.
type Viewport struct {
	W, H int
	FPS  int
}

// Back-end defaults.
var (
	TerminalViewport = Viewport{W: 80, H: 24, FPS: 60}
	WindowViewport   = Viewport{W: 960, H: 640, FPS: 60}
)

// Or fills every non-positive field of v from def.
func (v Viewport) Or(def Viewport) Viewport {
	if v.W <= 0 {
		v.W = def.W
	}
	if v.H <= 0 {
		v.H = def.H
	}
	if v.FPS <= 0 {
		v.FPS = def.FPS
	}
	return v
}
