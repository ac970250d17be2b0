package session

import (
	"log/slog"
)

// Emitter plays audio cues. Implementations must not block: the controller
// calls Emit while processing a tick.
type Emitter interface {
	Emit(cue Cue, tone Tone, volume float64) error
}

// EmitterFunc adapts an ordinary function to the Emitter interface.
type EmitterFunc func(cue Cue, tone Tone, volume float64) error

func (f EmitterFunc) Emit(cue Cue, tone Tone, volume float64) error {
	return f(cue, tone, volume)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for dropped cue diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// Controller owns the session and settings and advances the session once
// per tick. It is not safe for concurrent use; a single tick source is
// expected to drive it.
type Controller struct {
	emitter  Emitter
	log      *slog.Logger
	settings Settings
	session  Session
}

// NewController creates an idle controller. A nil emitter discards cues.
func NewController(s Settings, e Emitter, opts ...Option) *Controller {
	c := &Controller{
		settings: s,
		session:  initial(),
		emitter:  e,
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Session returns a copy of the current session state.
func (c *Controller) Session() Session {
	return c.session
}

// Settings returns a copy of the current settings.
func (c *Controller) Settings() Settings {
	s := c.settings
	s.CustomHoldTimes = append([]int(nil), c.settings.CustomHoldTimes...)

	return s
}

// HoldTarget returns the hold duration for round under the current
// settings.
func (c *Controller) HoldTarget(round int) int {
	return c.settings.HoldTarget(round)
}

// Start begins a new session from the first round, discarding any session
// in progress.
func (c *Controller) Start() {
	c.session = initial()
	c.session.Active = true

	c.log.Debug("session started",
		slog.Int("breaths_per_round", c.settings.BreathsPerRound),
		slog.Int("total_rounds", c.settings.TotalRounds),
	)

	c.emit(CueInhale)
}

// Pause suspends a running session without resetting it. It reports
// whether the session was running.
func (c *Controller) Pause() bool {
	if !c.session.Active {
		return false
	}

	c.session.Active = false
	c.session.Paused = true

	return true
}

// Resume continues a paused session from where it stopped. It reports
// whether a paused session existed.
func (c *Controller) Resume() bool {
	if !c.session.Paused {
		return false
	}

	c.session.Paused = false
	c.session.Active = true

	return true
}

// Toggle pauses a running session, resumes a paused one, or starts a new
// session when idle. It reports whether the session is active afterwards.
func (c *Controller) Toggle() bool {
	switch {
	case c.session.Active:
		c.Pause()
	case c.session.Paused:
		c.Resume()
	default:
		c.Start()
	}

	return c.session.Active
}

// Stop ends the session and resets every session field.
func (c *Controller) Stop() {
	c.session = initial()
}

// UpdateSettings applies a patch to the settings. The update is rejected
// while a session is in progress or when the result is out of range; in
// both cases the settings are left untouched.
func (c *Controller) UpdateSettings(p Patch) error {
	if c.session.InProgress() {
		return ErrSessionInProgress
	}

	next := p.Apply(c.settings)

	if err := next.Validate(); err != nil {
		return err
	}

	c.settings = next

	return nil
}

// Tick advances the session by one second. Ticks received while the
// session is not active are ignored.
func (c *Controller) Tick() Transition {
	if !c.session.Active {
		return c.transition(CueNone)
	}

	c.session.Elapsed++

	switch c.session.Phase {
	case Inhale, Exhale:
		return c.breathe()
	case Hold:
		return c.hold()
	}

	return c.transition(CueNone)
}

func (c *Controller) breathe() Transition {
	s := &c.session

	if s.Elapsed <= 0 || s.Elapsed%breathTicks != 0 {
		return c.transition(CueNone)
	}

	if s.Phase == Inhale {
		s.Phase = Exhale
		return c.transition(c.emit(CueExhale))
	}

	s.BreathCount++

	if s.BreathCount >= c.settings.BreathsPerRound {
		s.Phase = Hold
		s.Elapsed = 0
		s.HoldTarget = c.settings.HoldTarget(s.CurrentRound)

		return c.transition(c.emit(CueHold))
	}

	s.Phase = Inhale

	return c.transition(c.emit(CueInhale))
}

func (c *Controller) hold() Transition {
	s := &c.session

	if s.Elapsed < s.HoldTarget {
		return c.transition(CueNone)
	}

	if s.CurrentRound < c.settings.TotalRounds {
		s.CurrentRound++
		s.BreathCount = 0
		s.Phase = Inhale
		s.Elapsed = 0

		tr := c.transition(c.emit(CueRoundComplete))
		tr.RoundAdvanced = true

		return tr
	}

	c.Stop()

	c.log.Debug("session complete", slog.Int("rounds", c.settings.TotalRounds))

	tr := c.transition(c.emit(CueComplete))
	tr.Completed = true

	return tr
}

func (c *Controller) transition(cue Cue) Transition {
	return Transition{
		Cue:   cue,
		Phase: c.session.Phase,
		Round: c.session.CurrentRound,
	}
}

// emit forwards the cue to the emitter when sound is enabled and returns
// the cue regardless of the outcome.
func (c *Controller) emit(cue Cue) Cue {
	if c.emitter == nil || !c.settings.SoundEnabled {
		return cue
	}

	err := c.emitter.Emit(cue, c.settings.BreathingTone, c.settings.SoundVolume)
	if err != nil {
		c.log.Warn("cue dropped",
			slog.String("cue", string(cue)),
			slog.Any("error", err),
		)
	}

	return cue
}
