// Package config provides YAML-based scene configuration loading and
// difficulty presets for the arcade engine.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// WorldConfig is the size of an origin-centered world.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Bounds converts the world size to core.Bounds.
func (w WorldConfig) Bounds() core.Bounds {
	return core.Bounds{W: w.Width, H: w.Height}
}

// LoopConfig tunes the frame loop.
type LoopConfig struct {
	MaxDeltaMS int `yaml:"max_delta_ms"` // Upper bound for one frame's dt
}

// MaxDelta returns the dt cap as a duration.
func (l LoopConfig) MaxDelta() time.Duration {
	return time.Duration(l.MaxDeltaMS) * time.Millisecond
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	World  WorldConfig    `yaml:"world"`
	Paddle BreakoutPaddle `yaml:"paddle"`
	Ball   BreakoutBall   `yaml:"ball"`
	Bricks BreakoutBricks `yaml:"bricks"`
	Loop   LoopConfig     `yaml:"loop"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	Speed        float64    `yaml:"speed"`         // Units per second
	BottomOffset float64    `yaml:"bottom_offset"` // Gap between paddle bottom and world bottom
	Color        core.Color `yaml:"color"`
}

// BreakoutBall defines the ball.
type BreakoutBall struct {
	Size  float64    `yaml:"size"`
	Speed float64    `yaml:"speed"` // Per-axis launch speed
	Shape string     `yaml:"shape"` // "rect" or "circle"
	Color core.Color `yaml:"color"`
}

// BreakoutBricks defines the brick grid.
type BreakoutBricks struct {
	Rows      int        `yaml:"rows"`
	Cols      int        `yaml:"cols"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Padding   float64    `yaml:"padding"`
	OffsetTop float64    `yaml:"offset_top"` // Gap between world top and first row
	Points    int        `yaml:"points"`
	Color     core.Color `yaml:"color"`
}

// CameraDemoConfig contains all configuration for the camera demo.
type CameraDemoConfig struct {
	World    WorldConfig      `yaml:"world"`
	Backdrop core.Color       `yaml:"backdrop"`
	Trees    CameraDemoTrees  `yaml:"trees"`
	Walker   CameraDemoWalker `yaml:"walker"`
	Camera   CameraConfig     `yaml:"camera"`
	Loop     LoopConfig       `yaml:"loop"`
}

// CameraDemoTrees defines the scattered scenery.
type CameraDemoTrees struct {
	Count   int        `yaml:"count"`
	MinSize float64    `yaml:"min_size"`
	MaxSize float64    `yaml:"max_size"`
	Color   core.Color `yaml:"color"`
}

// CameraDemoWalker defines the player avatar.
type CameraDemoWalker struct {
	Size  float64    `yaml:"size"`
	Speed float64    `yaml:"speed"`
	Color core.Color `yaml:"color"`
}

// CameraConfig tunes the follow camera.
type CameraConfig struct {
	Lerp     float64 `yaml:"lerp"`
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	ZoomStep float64 `yaml:"zoom_step"`
	Zoom     float64 `yaml:"zoom"` // Initial zoom
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets lists the known presets in display order.
func Presets() []Preset {
	return []Preset{PresetEasy, PresetNormal, PresetHard}
}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (Preset, error) {
	switch p := Preset(name); p {
	case "":
		return PresetNormal, nil
	case PresetEasy, PresetNormal, PresetHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Paddle.Width = 160
		cfg.Ball.Speed = 300
	case PresetHard:
		cfg.Paddle.Width = 90
		cfg.Ball.Speed = 520
	case PresetNormal:
	}
}

// ApplyCameraDemoPreset modifies the config based on a difficulty preset.
func ApplyCameraDemoPreset(cfg *CameraDemoConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Trees.Count = 30
		cfg.Walker.Speed = 360
	case PresetHard:
		cfg.Trees.Count = 120
		cfg.Walker.Speed = 240
	case PresetNormal:
	}
}
