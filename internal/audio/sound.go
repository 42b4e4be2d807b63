// Package audio plays short synthesized cues for simulation events:
// a blip when the ball bounces off the paddle, a crack when a brick
// breaks and a falling tone when the round is lost.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/arcade-engine/internal/collision"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/entity"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue durations.
const (
	bounceLen   = 60 * time.Millisecond
	breakLen    = 120 * time.Millisecond
	gameOverLen = 450 * time.Millisecond
)

// SoundManager mixes cues into the speaker. All methods are safe to call
// before Initialize or after Close; they then do nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. No device is opened yet.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences every playing cue.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Enabled reports whether cues reach the speaker.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayBounce plays a short high blip.
func (sm *SoundManager) PlayBounce() {
	sm.play(Bounce())
}

// PlayBreak plays a brick crack.
func (sm *SoundManager) PlayBreak() {
	sm.play(Break(time.Now().UnixNano()))
}

// PlayGameOver plays a falling tone.
func (sm *SoundManager) PlayGameOver() {
	sm.play(GameOver())
}

// Hooks returns loop hooks that trigger the cues.
func (sm *SoundManager) Hooks() engine.Hooks {
	return engine.Hooks{
		OnCollision: func(a, b entity.Entity, _ collision.Result) {
			if isBounce(a.Base().Kind, b.Base().Kind) {
				sm.PlayBounce()
			}
		},
		OnRemove: func(e entity.Entity) {
			if e.Base().Kind == entity.KindBrick {
				sm.PlayBreak()
			}
		},
		OnRoundChange: func(_, to core.RoundState) {
			if to == core.RoundOver {
				sm.PlayGameOver()
			}
		},
	}
}

// isBounce reports whether a collision between kinds a and b is a ball
// hitting the paddle. Brick hits get the break cue on removal instead.
func isBounce(a, b entity.Kind) bool {
	return (a == entity.KindBall && b == entity.KindPaddle) ||
		(a == entity.KindPaddle && b == entity.KindBall)
}
