package timer

import (
	"sync/atomic"

	"github.com/ayoisaiah/breathe/internal/session"
)

// Muter silences an emitter without touching the session settings, so that
// cues can be muted while a session is in progress.
type Muter struct {
	next  session.Emitter
	muted atomic.Bool
}

// NewMuter wraps an emitter.
func NewMuter(next session.Emitter) *Muter {
	return &Muter{next: next}
}

func (m *Muter) Emit(cue session.Cue, tone session.Tone, volume float64) error {
	if m.muted.Load() || m.next == nil {
		return nil
	}

	return m.next.Emit(cue, tone, volume)
}

// Toggle flips the muted state and returns the new state.
func (m *Muter) Toggle() bool {
	for {
		old := m.muted.Load()
		if m.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether cues are being discarded.
func (m *Muter) Muted() bool {
	return m.muted.Load()
}
