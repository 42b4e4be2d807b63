// Package camerademo implements a free-roaming scene that exercises the
// camera: a walker in a large world scattered with trees, followed with
// smoothing and zoomable with the mouse wheel or +/-.
package camerademo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/arcade-engine/internal/camera"
	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/entity"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// Scene is the camera demo.
type Scene struct {
	cfg  config.CameraDemoConfig
	seed int64

	walker *entity.Walker
	cam    *camera.Camera
}

// New creates a camera demo. The same seed always grows the same forest.
func New(cfg config.CameraDemoConfig, seed int64) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("camerademo: %w", err)
	}
	return &Scene{cfg: cfg, seed: seed}, nil
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return config.CameraDemo
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Camera Demo"
}

// WorldBounds returns the world size.
func (s *Scene) WorldBounds() core.Bounds {
	return s.cfg.World.Bounds()
}

// AutoStart reports that the demo needs no start key.
func (s *Scene) AutoStart() bool {
	return true
}

// ZoomStep returns the zoom change per wheel notch or key press.
func (s *Scene) ZoomStep() float64 {
	return s.cfg.Camera.ZoomStep
}

// MaxDelta returns the configured dt cap.
func (s *Scene) MaxDelta() time.Duration {
	return s.cfg.Loop.MaxDelta()
}

// Walker returns the player avatar of the current round.
func (s *Scene) Walker() *entity.Walker {
	return s.walker
}

// Populate adds the backdrop, the trees and the walker, then points the
// camera at the walker.
func (s *Scene) Populate(l *engine.Loop) {
	world := s.cfg.World
	bounds := world.Bounds()

	l.Add(entity.NewProp(bounds.Rect(), s.cfg.Backdrop))

	rng := rand.New(rand.NewSource(s.seed)) //#nosec G404 -- scenery only
	t := s.cfg.Trees
	for range t.Count {
		x := (rng.Float64() - 0.5) * world.Width
		y := (rng.Float64() - 0.5) * world.Height
		size := t.MinSize + rng.Float64()*(t.MaxSize-t.MinSize)
		l.Add(entity.NewProp(core.NewRect(x, y, size, size), t.Color))
	}

	w := s.cfg.Walker
	s.walker = entity.NewWalker(core.Vec2{}, w.Size, w.Speed, w.Color)
	l.Add(s.walker)

	s.cam = l.Camera()
	c := s.cfg.Camera
	s.cam.Lerp = c.Lerp
	s.cam.MinZoom = c.MinZoom
	s.cam.MaxZoom = c.MaxZoom
	s.cam.SetZoom(c.Zoom)
	s.cam.Follow(s.walker)
	s.cam.SnapToTarget()
}

// DrawOverlay draws the controls, the camera readout with the visible world
// area, and a label that tracks the walker on screen.
func (s *Scene) DrawOverlay(surf render.Surface, _ core.RoundState) {
	cw, ch := render.CharSize(surf)
	surf.Text(cw, ch/2, "WASD/arrows move  wheel or +/- zoom", core.ColorWhite)
	if s.cam == nil {
		return
	}

	w, h := surf.Size()
	info := fmt.Sprintf("Zoom %.1fx  Camera (%.0f, %.0f)", s.cam.Zoom, s.cam.Pos.X, s.cam.Pos.Y)
	surf.Text(cw, ch*1.5, info, core.ColorGray)
	tl := s.cam.ScreenToWorld(core.Vec2{}, w, h)
	br := s.cam.ScreenToWorld(core.V(w, h), w, h)
	surf.Text(cw, ch*2.5, fmt.Sprintf("View (%.0f, %.0f) to (%.0f, %.0f)", tl.X, tl.Y, br.X, br.Y), core.ColorGray)

	if s.walker != nil {
		top := core.V(s.walker.Center().X, s.walker.Pos.Y)
		p := s.cam.WorldToScreen(top, w, h)
		surf.Text(p.X-cw*1.5, p.Y-ch, "you", core.ColorWhite)
	}
}

func init() {
	registry.Register(registry.Info{
		ID:          config.CameraDemo,
		Title:       "Camera Demo",
		Description: "Walk a large world with a smoothed, zoomable camera",
	}, func(opts registry.Options) (engine.Scene, error) {
		cfg, err := config.LoadCameraDemo(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyCameraDemoPreset(&cfg, opts.Preset)
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return New(cfg, seed)
	})
}
