package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/breathe/internal/session"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Phase colours a value by breathing phase.
func Phase(p session.Phase, a any) string {
	switch p {
	case session.Inhale:
		return Cyan(a)
	case session.Exhale:
		return Green(a)
	case session.Hold:
		return Magenta(a)
	}

	return Highlight(a)
}
