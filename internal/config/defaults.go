package config

import (
	_ "embed"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Scene IDs with a configuration file.
const (
	Breakout   = "breakout"
	CameraDemo = "camera-demo"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/camera-demo.yaml
var defaultCameraDemoYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: WorldConfig{Width: 960, Height: 640},
		Paddle: BreakoutPaddle{
			Width:        120,
			Height:       20,
			Speed:        600,
			BottomOffset: 30,
			Color:        core.ColorCyan,
		},
		Ball: BreakoutBall{
			Size:  24,
			Speed: 400,
			Shape: "rect",
			Color: core.ColorMagenta,
		},
		Bricks: BreakoutBricks{
			Rows:      6,
			Cols:      11,
			Width:     75,
			Height:    20,
			Padding:   5,
			OffsetTop: 30,
			Points:    10,
			Color:     core.ColorOrange,
		},
		Loop: LoopConfig{MaxDeltaMS: 50},
	}
}

// DefaultCameraDemoConfig returns the default camera demo configuration.
func DefaultCameraDemoConfig() CameraDemoConfig {
	return CameraDemoConfig{
		World:    WorldConfig{Width: 2000, Height: 2000},
		Backdrop: core.ColorLightGray,
		Trees: CameraDemoTrees{
			Count:   50,
			MinSize: 20,
			MaxSize: 60,
			Color:   core.ColorSeaGreen,
		},
		Walker: CameraDemoWalker{
			Size:  40,
			Speed: 300,
			Color: core.ColorRoyalBlue,
		},
		Camera: CameraConfig{
			Lerp:     0.08,
			MinZoom:  0.3,
			MaxZoom:  2.5,
			ZoomStep: 0.1,
			Zoom:     1,
		},
		Loop: LoopConfig{MaxDeltaMS: 50},
	}
}

// GetDefaultYAML returns the embedded default YAML for a scene.
func GetDefaultYAML(sceneID string) []byte {
	switch sceneID {
	case Breakout:
		return defaultBreakoutYAML
	case CameraDemo:
		return defaultCameraDemoYAML
	default:
		return nil
	}
}
