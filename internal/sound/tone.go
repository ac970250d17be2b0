package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"

	"github.com/ayoisaiah/breathe/internal/session"
)

type waveform func(phase float64) float64

func sine(p float64) float64 {
	return math.Sin(2 * math.Pi * p)
}

func sawtooth(p float64) float64 {
	return 2*p - 1
}

func triangle(p float64) float64 {
	return 1 - 4*math.Abs(p-0.5)
}

// toner builds a fixed frequency oscillator.
type toner func(sr beep.SampleRate, freq float64) (beep.Streamer, error)

// preset holds the base frequencies of a tone for each cue.
type preset struct {
	wave     waveform
	gen      toner
	inhale   float64
	exhale   float64
	hold     float64
	complete float64
	cutoff   float64
}

var presets = map[session.Tone]preset{
	session.Gentle: {
		wave:     sine,
		gen:      generators.SineTone,
		inhale:   220,
		exhale:   330,
		hold:     440,
		complete: 523,
		cutoff:   800,
	},
	session.Deep: {
		wave:     sawtooth,
		gen:      generators.SawtoothTone,
		inhale:   110,
		exhale:   165,
		hold:     220,
		complete: 330,
		cutoff:   400,
	},
	session.Ocean: {
		wave:     triangle,
		gen:      generators.TriangleTone,
		inhale:   100,
		exhale:   150,
		hold:     200,
		complete: 250,
		cutoff:   300,
	},
}

// point is a frequency reached at a given offset in seconds.
type point struct {
	at   float64
	freq float64
}

// voice fully describes one synthesised cue.
type voice struct {
	wave     waveform
	gen      toner
	sweep    []point
	cutoff   float64
	duration float64
	peak     float64
}

func voiceFor(cue session.Cue, tone session.Tone, volume float64) (voice, error) {
	p, ok := presets[tone]
	if !ok {
		return voice{}, errUnknownTone.Fmt(tone)
	}

	v := voice{
		wave:   p.wave,
		gen:    p.gen,
		cutoff: p.cutoff,
	}

	c := p.complete

	switch cue {
	case session.CueInhale:
		v.sweep = []point{{0, p.inhale}, {1.8, p.exhale}}
		v.duration = 2
		v.peak = 0.1
	case session.CueExhale:
		v.sweep = []point{{0, p.exhale}, {1.8, p.inhale}}
		v.duration = 2
		v.peak = 0.1
	case session.CueHold:
		v.sweep = []point{{0, p.hold}}
		v.duration = 0.8
		v.peak = 0.15
	case session.CueComplete:
		v.sweep = []point{{0, c}, {0.3, c * 1.5}, {0.6, c * 2}}
		v.duration = 1
		v.peak = 0.2
	case session.CueRoundComplete:
		v.sweep = []point{{0, c}, {0.2, c * 1.2}, {0.4, c * 0.8}}
		v.duration = 0.8
		v.peak = 0.2
	default:
		return voice{}, errUnknownCue.Fmt(cue)
	}

	v.peak *= volume

	return v, nil
}

// freqAt returns the frequency at t seconds, ramping exponentially between
// sweep points and holding the last value afterwards.
func (v voice) freqAt(t float64) float64 {
	if t <= v.sweep[0].at {
		return v.sweep[0].freq
	}

	for i := 1; i < len(v.sweep); i++ {
		a, b := v.sweep[i-1], v.sweep[i]
		if t < b.at {
			frac := (t - a.at) / (b.at - a.at)
			return a.freq * math.Pow(b.freq/a.freq, frac)
		}
	}

	return v.sweep[len(v.sweep)-1].freq
}

// gainAt returns the envelope at t seconds: a 50ms attack to the peak, a
// decay to 70% of the peak at 80% of the duration, then a release to
// silence.
func (v voice) gainAt(t float64) float64 {
	attack := 0.05
	sustain := v.duration * 0.8

	switch {
	case t <= 0 || t >= v.duration:
		return 0
	case t < attack:
		return v.peak * t / attack
	case t < sustain:
		frac := (t - attack) / (sustain - attack)
		return v.peak * (1 - 0.3*frac)
	default:
		frac := (t - sustain) / (v.duration - sustain)
		return v.peak * 0.7 * (1 - frac)
	}
}

// sweep renders the waveform of a voice while its frequency follows the
// sweep points.
type sweep struct {
	v     voice
	sr    beep.SampleRate
	pos   int
	phase float64
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		sec := float64(s.pos) / float64(s.sr)

		s.phase += s.v.freqAt(sec) / float64(s.sr)
		s.phase -= math.Floor(s.phase)

		y := s.v.wave(s.phase)
		samples[i][0], samples[i][1] = y, y

		s.pos++
	}

	return len(samples), true
}

func (s *sweep) Err() error {
	return nil
}

// shaper passes a mono source through a one-pole low-pass filter and the
// envelope of a voice.
type shaper struct {
	src   beep.Streamer
	v     voice
	sr    beep.SampleRate
	pos   int
	lp    float64
	alpha float64
}

func (s *shaper) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = s.src.Stream(samples)

	for i := range samples[:n] {
		sec := float64(s.pos) / float64(s.sr)

		s.lp += s.alpha * (samples[i][0] - s.lp)

		y := s.lp * s.v.gainAt(sec)
		samples[i][0], samples[i][1] = y, y

		s.pos++
	}

	return n, ok
}

func (s *shaper) Err() error {
	return s.src.Err()
}

// newToneStreamer renders a voice for its full duration. A voice with a
// single sweep point plays a fixed frequency oscillator.
func newToneStreamer(v voice, sr beep.SampleRate) (beep.Streamer, error) {
	var src beep.Streamer = &sweep{v: v, sr: sr}

	if len(v.sweep) == 1 {
		var err error

		src, err = v.gen(sr, v.sweep[0].freq)
		if err != nil {
			return nil, errSynthesis.Fmt(v.sweep[0].freq).Wrap(err)
		}
	}

	dt := 1 / float64(sr)
	rc := 1 / (2 * math.Pi * v.cutoff)

	total := sr.N(time.Duration(v.duration * float64(time.Second)))

	return beep.Take(total, &shaper{
		src:   src,
		v:     v,
		sr:    sr,
		alpha: dt / (rc + dt),
	}), nil
}
