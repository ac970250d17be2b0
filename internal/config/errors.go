package config

import "github.com/ayoisaiah/breathe/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errInvalidHoldTimes = &apperr.Error{
		Message: "invalid hold times %q: expected a comma-separated list of seconds",
	}

	errTooManyHoldTimes = &apperr.Error{
		Message: "%d custom hold times given, but a session has at most %d rounds",
	}

	errUnknownSound = &apperr.Error{
		Message: "unknown %s sound: %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}
)
