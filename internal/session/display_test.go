package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayBreathing(t *testing.T) {
	c, _ := newTestController(DefaultSettings())
	c.Start()
	tickN(c, 66)

	d := c.Display()

	assert.Equal(t, "EXHALE", d.Label)
	assert.Equal(t, "1:06", d.Clock)
	assert.True(t, d.ShowBreaths)
	assert.False(t, d.ShowNextHold)
	assert.Equal(t, 16, d.Breath)
	assert.Equal(t, 30, d.BreathsPerRound)
	assert.Equal(t, 1, d.Round)
	assert.Equal(t, 3, d.TotalRounds)
	assert.InDelta(t, 16.0/30.0, d.Progress, 1e-9)
	assert.True(t, d.Active)
}

func TestDisplayHold(t *testing.T) {
	s := scenarioSettings()
	s.TotalRounds = 2

	c, _ := newTestController(s)
	c.Start()
	tickN(c, 80+5)

	d := c.Display()

	assert.Equal(t, "HOLD YOUR BREATH", d.Label)
	assert.Equal(t, "0:10", d.Clock)
	assert.False(t, d.ShowBreaths)
	assert.True(t, d.ShowNextHold)
	assert.Equal(t, 30, d.NextHold)
	assert.InDelta(t, 5.0/15.0, d.Progress, 1e-9)
}

func TestDisplayHoldFinalRoundHidesPreview(t *testing.T) {
	c, _ := newTestController(scenarioSettings())
	c.Start()
	tickN(c, 81)

	d := c.Display()

	assert.Equal(t, Hold, d.Phase)
	assert.False(t, d.ShowNextHold)
}

func TestDisplayClampsNegativeHold(t *testing.T) {
	c, _ := newTestController(scenarioSettings())

	// force an overrun that the transition rules would never produce
	c.session = Session{
		Phase:        Hold,
		CurrentRound: 1,
		Elapsed:      17,
		HoldTarget:   15,
		Active:       true,
	}

	d := c.Display()

	assert.Equal(t, "0:00", d.Clock)
	assert.InDelta(t, 1.0, d.Progress, 1e-9)
}

func TestDisplayIdle(t *testing.T) {
	c, _ := newTestController(DefaultSettings())

	d := c.Display()

	assert.Equal(t, "INHALE", d.Label)
	assert.Equal(t, "0:00", d.Clock)
	assert.False(t, d.Active)
	assert.False(t, d.Paused)
}
