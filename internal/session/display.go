package session

import "github.com/ayoisaiah/breathe/internal/timeutil"

// Display is the snapshot a view renders after each tick.
type Display struct {
	Label           string
	Clock           string
	Phase           Phase
	Round           int
	TotalRounds     int
	Breath          int
	BreathsPerRound int
	NextHold        int
	// Progress is the fraction of the current phase group completed: breaths
	// done in the round, or hold time elapsed.
	Progress     float64
	ShowBreaths  bool
	ShowNextHold bool
	Active       bool
	Paused       bool
}

// Display computes the render snapshot for the current state.
func (c *Controller) Display() Display {
	s := c.session

	d := Display{
		Phase:           s.Phase,
		Label:           s.Phase.Label(),
		Round:           s.CurrentRound,
		TotalRounds:     c.settings.TotalRounds,
		Breath:          s.BreathCount,
		BreathsPerRound: c.settings.BreathsPerRound,
		Active:          s.Active,
		Paused:          s.Paused,
	}

	if s.Phase != Hold {
		d.Clock = timeutil.FormatClock(s.Elapsed)
		d.ShowBreaths = true

		if d.BreathsPerRound > 0 {
			d.Progress = float64(s.BreathCount) / float64(d.BreathsPerRound)
		}

		return d
	}

	d.Clock = timeutil.FormatClock(s.HoldRemaining())

	if s.HoldTarget > 0 {
		d.Progress = min(float64(s.Elapsed)/float64(s.HoldTarget), 1)
	}

	if s.CurrentRound < c.settings.TotalRounds {
		d.ShowNextHold = true
		d.NextHold = c.settings.HoldTarget(s.CurrentRound + 1)
	}

	return d
}
