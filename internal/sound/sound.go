// Package sound plays the audio cues of a breathing session, either as
// synthesised tones or from user supplied sound files
package sound

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/ayoisaiah/breathe/internal/session"
)

// SampleRate is the rate the speaker is initialised at.
const SampleRate beep.SampleRate = 44100

const bufferSize = 10

// Nop discards every cue.
type Nop struct{}

func (Nop) Emit(session.Cue, session.Tone, float64) error {
	return nil
}

type output struct {
	init  func(sr beep.SampleRate, bufferSize int) error
	play  func(s ...beep.Streamer)
	close func()
}

var speakerOutput = output{
	init: speaker.Init,
	play: speaker.Play,
	close: func() {
		speaker.Clear()
		speaker.Close()
	},
}

// Player plays cues on the default audio device. The device is opened on the
// first cue; if that fails every later cue returns ErrUnavailable without
// retrying.
type Player struct {
	initErr   error
	out       output
	files     map[session.Cue]*beep.Buffer
	initOnce  sync.Once
	closeOnce sync.Once
	closed    atomic.Bool
	opened    bool
}

// Option configures a Player.
type Option func(*Player) error

// WithCueFile replaces the synthesised tone of a cue with a sound file.
func WithCueFile(cue session.Cue, path string) Option {
	return func(p *Player) error {
		if path == "" {
			return nil
		}

		if !SupportedFile(path) {
			return errInvalidSoundFormat.Fmt(path)
		}

		buf, err := loadFile(path)
		if err != nil {
			return errLoadSound.Fmt(cue, path).Wrap(err)
		}

		p.files[cue] = buf

		return nil
	}
}

func withOutput(out output) Option {
	return func(p *Player) error {
		p.out = out
		return nil
	}
}

// New creates a Player. Sound files are decoded immediately so that a bad
// file is reported before a session starts.
func New(opts ...Option) (*Player, error) {
	p := &Player{
		out:   speakerOutput,
		files: make(map[session.Cue]*beep.Buffer),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Player) open() error {
	p.initOnce.Do(func() {
		p.initErr = p.out.init(
			SampleRate,
			SampleRate.N(time.Second/bufferSize),
		)
		p.opened = p.initErr == nil
	})

	return p.initErr
}

// Emit starts playing the cue and returns without waiting for it to finish.
func (p *Player) Emit(cue session.Cue, tone session.Tone, volume float64) error {
	if p.closed.Load() {
		return ErrUnavailable
	}

	if err := p.open(); err != nil {
		return ErrUnavailable.Wrap(err)
	}

	s, err := p.streamer(cue, tone, volume)
	if err != nil {
		return err
	}

	p.out.play(s)

	return nil
}

func (p *Player) streamer(
	cue session.Cue,
	tone session.Tone,
	volume float64,
) (beep.Streamer, error) {
	if buf, ok := p.files[cue]; ok {
		return &effects.Volume{
			Streamer: buf.Streamer(0, buf.Len()),
			Base:     2,
			Volume:   math.Log2(max(volume, math.SmallestNonzeroFloat64)),
			Silent:   volume <= 0,
		}, nil
	}

	v, err := voiceFor(cue, tone, volume)
	if err != nil {
		return nil, err
	}

	return newToneStreamer(v, SampleRate)
}

// Close releases the audio device if it was opened. It is safe to call more
// than once.
func (p *Player) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)

		// claim the init so a late Emit cannot reopen the device
		p.initOnce.Do(func() {
			p.initErr = ErrUnavailable
		})

		if p.opened {
			p.out.close()
		}
	})
}
