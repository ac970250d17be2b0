// Package session implements the breathing session state machine: paced
// inhale and exhale breaths followed by a breath hold, repeated for a
// number of rounds
package session

// breathTicks is the length of an inhale or exhale in ticks.
const breathTicks = 2

// Session is the mutable state of one breathing exercise.
type Session struct {
	Phase        Phase `json:"phase"`
	CurrentRound int   `json:"current_round"`
	BreathCount  int   `json:"breath_count"`
	Elapsed      int   `json:"elapsed"`
	HoldTarget   int   `json:"hold_target"`
	Active       bool  `json:"active"`
	Paused       bool  `json:"paused"`
}

// initial returns a session with every field at its starting value.
func initial() Session {
	return Session{
		Phase:        Inhale,
		CurrentRound: 1,
	}
}

// InProgress reports whether a session has been started and not yet
// stopped or completed.
func (s Session) InProgress() bool {
	return s.Active || s.Paused
}

// HoldRemaining returns the seconds left in the current hold, never less
// than zero.
func (s Session) HoldRemaining() int {
	return max(s.HoldTarget-s.Elapsed, 0)
}

// Transition describes the outcome of a single tick.
type Transition struct {
	Cue Cue
	// Phase is the phase after the tick.
	Phase Phase
	// Round is the round after the tick.
	Round int
	// RoundAdvanced is set when a hold ended and the next round began.
	RoundAdvanced bool
	// Completed is set when the final hold ended the session.
	Completed bool
}
