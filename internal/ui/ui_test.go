package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/breathe/internal/session"
)

func TestPrintTable(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	var buf bytes.Buffer

	err := PrintTable([][]string{
		{"ROUND", "HOLD"},
		{"1", "0:30"},
		{"2", "1:00"},
	}, &buf)
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	assert.Contains(t, out, "ROUND")
	assert.Contains(t, out, "1:00")
}

func TestPhaseColorWithoutStyling(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	for _, p := range []session.Phase{session.Inhale, session.Exhale, session.Hold} {
		assert.Equal(t, p.Label(), Phase(p, p.Label()))
	}
}

func TestPhaseLabel(t *testing.T) {
	s := NewStyle(PhaseColors{Inhale: "#12EAEA", Exhale: "#B0DB43", Hold: "#C492B1"}, true)

	for _, p := range []session.Phase{session.Inhale, session.Exhale, session.Hold} {
		assert.Contains(t, s.PhaseLabel(p), p.Label())
	}
}
