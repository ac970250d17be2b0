package timer

import "github.com/ayoisaiah/breathe/internal/apperr"

var (
	errSettingsLocked = &apperr.Error{
		Message: "stop the session before changing settings",
	}

	errSettingsRejected = &apperr.Error{
		Message: "settings were not saved",
	}
)
