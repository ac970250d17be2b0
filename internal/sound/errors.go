package sound

import "github.com/ayoisaiah/breathe/internal/apperr"

var (
	// ErrUnavailable is returned by Emit when the audio device could not be
	// initialised.
	ErrUnavailable = &apperr.Error{
		Message: "audio output unavailable",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file %s must be in mp3, ogg, flac, or wav format",
	}

	errLoadSound = &apperr.Error{
		Message: "unable to load %s sound from %s",
	}

	errUnknownTone = &apperr.Error{
		Message: "no tone preset named %q",
	}

	errSynthesis = &apperr.Error{
		Message: "unable to synthesise a %.0f Hz tone",
	}

	errUnknownCue = &apperr.Error{
		Message: "no sound defined for cue %q",
	}
)
