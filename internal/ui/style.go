package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/breathe/internal/session"
)

// Style holds the lipgloss styles of the interactive timer.
type Style struct {
	Phase     map[session.Phase]lipgloss.Style
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
}

// PhaseColors are the hex colours of each breathing phase.
type PhaseColors struct {
	Inhale string
	Exhale string
	Hold   string
}

// NewStyle builds the timer styles for the given phase colours.
func NewStyle(colors PhaseColors, dark bool) Style {
	main := lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FAFAFA"}
	hint := lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#626262"}

	if !dark {
		main.Dark = main.Light
		hint.Dark = hint.Light
	}

	label := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0F0F0F")).
			Background(lipgloss.Color(color)).
			Padding(0, 1).
			MarginRight(1)
	}

	return Style{
		Phase: map[session.Phase]lipgloss.Style{
			session.Inhale: label(colors.Inhale),
			session.Exhale: label(colors.Exhale),
			session.Hold:   label(colors.Hold),
		},
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary: lipgloss.NewStyle().Foreground(main),
		Hint:      lipgloss.NewStyle().Foreground(hint),
	}
}

// PhaseLabel renders the label of a phase in its colour.
func (s Style) PhaseLabel(p session.Phase) string {
	st, ok := s.Phase[p]
	if !ok {
		return s.Main.Render(p.Label())
	}

	return st.Render(p.Label())
}
