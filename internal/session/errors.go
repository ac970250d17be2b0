package session

import "github.com/ayoisaiah/breathe/internal/apperr"

var (
	// ErrSessionInProgress is returned when settings are changed while a
	// session is running or paused.
	ErrSessionInProgress = &apperr.Error{
		Message: "settings cannot be changed while a session is in progress",
	}

	// ErrInvalidSettings is returned when a settings value is out of range.
	ErrInvalidSettings = &apperr.Error{
		Message: "invalid settings: %s must be between %v and %v, got %v",
	}

	errUnknownTone = &apperr.Error{
		Message: "unknown breathing tone %q (must be gentle, deep, or ocean)",
	}
)
