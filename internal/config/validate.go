package config

import (
	"errors"
	"fmt"
)

func positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %v", name, v)
	}
	return nil
}

func (w WorldConfig) validate() error {
	return errors.Join(
		positive("world.width", w.Width),
		positive("world.height", w.Height),
	)
}

func (l LoopConfig) validate() error {
	if l.MaxDeltaMS <= 0 {
		return fmt.Errorf("loop.max_delta_ms must be positive, got %d", l.MaxDeltaMS)
	}
	return nil
}

// Validate reports every invalid field at once.
func (c BreakoutConfig) Validate() error {
	errs := []error{
		c.World.validate(),
		c.Loop.validate(),
		positive("paddle.width", c.Paddle.Width),
		positive("paddle.height", c.Paddle.Height),
		positive("paddle.speed", c.Paddle.Speed),
		positive("ball.size", c.Ball.Size),
		positive("ball.speed", c.Ball.Speed),
		positive("bricks.width", c.Bricks.Width),
		positive("bricks.height", c.Bricks.Height),
	}
	if c.Ball.Shape != "rect" && c.Ball.Shape != "circle" {
		errs = append(errs, fmt.Errorf("ball.shape must be rect or circle, got %q", c.Ball.Shape))
	}
	if c.Bricks.Rows < 0 || c.Bricks.Cols < 0 {
		errs = append(errs, fmt.Errorf("bricks.rows and bricks.cols must not be negative"))
	}
	if c.Bricks.Padding < 0 || c.Bricks.OffsetTop < 0 || c.Paddle.BottomOffset < 0 {
		errs = append(errs, fmt.Errorf("paddings and offsets must not be negative"))
	}
	if c.Paddle.Width > c.World.Width {
		errs = append(errs, fmt.Errorf("paddle.width %v exceeds world.width %v", c.Paddle.Width, c.World.Width))
	}
	gridW := float64(c.Bricks.Cols)*(c.Bricks.Width+c.Bricks.Padding) - c.Bricks.Padding
	if c.Bricks.Cols > 0 && gridW > c.World.Width {
		errs = append(errs, fmt.Errorf("brick grid width %v exceeds world.width %v", gridW, c.World.Width))
	}
	return errors.Join(errs...)
}

// Validate reports every invalid field at once.
func (c CameraDemoConfig) Validate() error {
	errs := []error{
		c.World.validate(),
		c.Loop.validate(),
		positive("walker.size", c.Walker.Size),
		positive("walker.speed", c.Walker.Speed),
		positive("camera.min_zoom", c.Camera.MinZoom),
		positive("camera.zoom_step", c.Camera.ZoomStep),
	}
	if c.Trees.Count < 0 {
		errs = append(errs, fmt.Errorf("trees.count must not be negative, got %d", c.Trees.Count))
	}
	if c.Trees.Count > 0 && (c.Trees.MinSize <= 0 || c.Trees.MaxSize < c.Trees.MinSize) {
		errs = append(errs, fmt.Errorf("trees need 0 < min_size <= max_size, got %v..%v", c.Trees.MinSize, c.Trees.MaxSize))
	}
	if c.Camera.Lerp <= 0 || c.Camera.Lerp > 1 {
		errs = append(errs, fmt.Errorf("camera.lerp must be in (0, 1], got %v", c.Camera.Lerp))
	}
	if c.Camera.MaxZoom < c.Camera.MinZoom {
		errs = append(errs, fmt.Errorf("camera.max_zoom %v is below min_zoom %v", c.Camera.MaxZoom, c.Camera.MinZoom))
	}
	return errors.Join(errs...)
}
