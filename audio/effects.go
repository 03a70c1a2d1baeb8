package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/exp/rand"
)

// Shape is the waveform of a Tone.
type Shape int

const (
	ShapeSine Shape = iota
	ShapeSquare
	ShapeSaw
	ShapeNoise
)

// sample returns the waveform value in [-1, 1] at phase, a fraction of one period.
func (sh Shape) sample(phase float64, rng *rand.Rand) float64 {
	switch sh {
	case ShapeSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case ShapeSaw:
		return 2*phase - 1
	case ShapeNoise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Tone is one synthesized note. It rises linearly over FadeIn, holds, and
// falls linearly over the last FadeOut of Length.
type Tone struct {
	Freq    float64
	Shape   Shape
	Length  time.Duration
	FadeIn  time.Duration
	FadeOut time.Duration
	Gain    float64
}

// Streamer renders t at rate. Noise tones are seeded so an effect sounds the
// same every time it plays.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		shape:   t.Shape,
		gain:    t.Gain,
		step:    t.Freq / float64(rate),
		total:   rate.N(t.Length),
		fadeIn:  rate.N(t.FadeIn),
		fadeOut: rate.N(t.FadeOut),
		rng:     rand.New(rand.NewSource(uint64(t.Freq*1000) + 1)),
	}
}

type toneStreamer struct {
	shape   Shape
	gain    float64
	step    float64
	total   int
	fadeIn  int
	fadeOut int
	rng     *rand.Rand

	pos   int
	phase float64
}

func (s *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}
	n := min(len(samples), s.total-s.pos)
	for i := 0; i < n; i++ {
		v := s.shape.sample(s.phase, s.rng) * s.gain * s.level()
		samples[i] = [2]float64{v, v}
		s.phase = math.Mod(s.phase+s.step, 1)
		s.pos++
	}
	return n, true
}

func (s *toneStreamer) Err() error { return nil }

// level is the fade multiplier at the current position.
func (s *toneStreamer) level() float64 {
	lvl := 1.0
	if s.pos < s.fadeIn {
		lvl = float64(s.pos) / float64(s.fadeIn)
	}
	if left := s.total - s.pos; left < s.fadeOut {
		lvl = min(lvl, float64(left)/float64(s.fadeOut))
	}
	return lvl
}

// Rising two notes, square wave.
var chimeTones = []Tone{
	{Freq: 659.25, Shape: ShapeSquare, Length: 70 * time.Millisecond, FadeIn: 5 * time.Millisecond, FadeOut: 30 * time.Millisecond, Gain: 0.5},
	{Freq: 987.77, Shape: ShapeSquare, Length: 70 * time.Millisecond, FadeIn: 5 * time.Millisecond, FadeOut: 50 * time.Millisecond, Gain: 0.5},
}

var blipTone = Tone{Freq: 440, Shape: ShapeSine, Length: 40 * time.Millisecond, FadeIn: 5 * time.Millisecond, FadeOut: 20 * time.Millisecond, Gain: 1}

// Noise over a low saw rumble, played together.
var crashTones = []Tone{
	{Shape: ShapeNoise, Length: 450 * time.Millisecond, FadeIn: 2 * time.Millisecond, FadeOut: 400 * time.Millisecond, Gain: 0.4},
	{Freq: 80, Shape: ShapeSaw, Length: 450 * time.Millisecond, FadeIn: 2 * time.Millisecond, FadeOut: 350 * time.Millisecond, Gain: 0.6},
}

func streamers(rate beep.SampleRate, tones []Tone) []beep.Streamer {
	out := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		out[i] = t.Streamer(rate)
	}
	return out
}

// withVolume scales s by vol in [0, 1]; 0 is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: max(vol, 0) - 1}
}

// NewChime builds the effect played when an apple is eaten.
func NewChime(rate beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(beep.Seq(streamers(rate, chimeTones)...), vol)
}

// NewBlip builds the effect played on pause and resume.
func NewBlip(rate beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(blipTone.Streamer(rate), vol)
}

// NewCrash builds the effect played at game over.
func NewCrash(rate beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(beep.Mix(streamers(rate, crashTones)...), vol)
}
