package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/arcade-engine/internal/collision"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/entity"
)

// drain streams s to completion and returns the sample count and the peak
// absolute amplitude.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
			if smp[0] != smp[1] {
				peak = math.Inf(1)
			}
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		name   string
		cue    beep.Streamer
		length int
	}{
		{"bounce", Bounce(), sampleRate.N(bounceLen)},
		{"break", Break(1), sampleRate.N(breakLen)},
		{"game over", GameOver(), sampleRate.N(gameOverLen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(tt.cue)
			if n != tt.length {
				t.Errorf("streamed %d samples, expected %d", n, tt.length)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak amplitude = %v, expected within (0, 1]", peak)
			}
		})
	}
}

func TestGeneratorsNeverFail(t *testing.T) {
	if err := NewToneGenerator(sampleRate, 440, 220, 0.1).Err(); err != nil {
		t.Errorf("tone Err() = %v", err)
	}
	if err := NewCrackGenerator(sampleRate, 9).Err(); err != nil {
		t.Errorf("crack Err() = %v", err)
	}
}

func TestUninitializedIsSilent(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("uninitialized manager panicked: %v", r)
		}
	}()

	sm := NewSoundManager()
	if sm.Enabled() {
		t.Fatal("new manager should not be enabled")
	}

	sm.PlayBounce()
	sm.PlayBreak()
	sm.PlayGameOver()

	h := sm.Hooks()
	ball := entity.NewBall(core.Vec2{}, core.V(10, 10), core.Vec2{}, collision.ShapeRect, core.ColorWhite)
	paddle := entity.NewPaddle(core.Vec2{}, core.V(40, 10), 100, core.ColorWhite)
	brick := entity.NewBrick(core.Vec2{}, core.V(40, 10), 0, 0, 10, core.ColorRed)
	h.OnCollision(ball, paddle, collision.Result{})
	h.OnRemove(brick)
	h.OnRoundChange(core.RoundRunning, core.RoundOver)

	sm.Close()
	if sm.mixer.Len() != 0 {
		t.Errorf("mixer holds %d streamers, expected none", sm.mixer.Len())
	}
}

func TestIsBounce(t *testing.T) {
	tests := []struct {
		a, b entity.Kind
		want bool
	}{
		{entity.KindBall, entity.KindPaddle, true},
		{entity.KindPaddle, entity.KindBall, true},
		{entity.KindBall, entity.KindBrick, false},
		{entity.KindBall, entity.KindBall, false},
		{entity.KindWalker, entity.KindProp, false},
	}

	for _, tt := range tests {
		if got := isBounce(tt.a, tt.b); got != tt.want {
			t.Errorf("isBounce(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.want)
		}
	}
}
