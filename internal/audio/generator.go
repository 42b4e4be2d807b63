package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Bounce returns the paddle blip.
func Bounce() beep.Streamer {
	return beep.Take(sampleRate.N(bounceLen), NewToneGenerator(sampleRate, 880, 880, bounceLen.Seconds()))
}

// Break returns the brick crack.
func Break(seed int64) beep.Streamer {
	return beep.Take(sampleRate.N(breakLen), NewCrackGenerator(sampleRate, seed))
}

// GameOver returns the falling tone.
func GameOver() beep.Streamer {
	return beep.Take(sampleRate.N(gameOverLen), NewToneGenerator(sampleRate, 440, 110, gameOverLen.Seconds()))
}

// ToneGenerator generates a sine tone gliding from one frequency to another
// with a linear fade out.
type ToneGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   float64 // Seconds
	phase    float64
	pos      int
}

// NewToneGenerator creates a tone generator.
func NewToneGenerator(sr beep.SampleRate, from, to, length float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, from: from, to: to, length: length}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(t/g.length, 1)

		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.2 * (1 - progress) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// CrackGenerator generates a short burst of decaying noise over a low thump.
type CrackGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrackGenerator creates a crack generator.
func NewCrackGenerator(sr beep.SampleRate, seed int64) *CrackGenerator {
	return &CrackGenerator{sr: sr, seed: seed}
}

func (g *CrackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Envelope - quick attack, fast decay
		envelope := math.Exp(-t * 30)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		thump := 0.3 * math.Sin(2*math.Pi*140*t)

		sample := envelope * (0.3*noise + thump)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrackGenerator) Err() error {
	return nil
}
