package session

// Phase is the breathing phase of an in-progress session.
type Phase int

const (
	Inhale Phase = iota
	Exhale
	Hold
)

func (p Phase) String() string {
	switch p {
	case Inhale:
		return "inhale"
	case Exhale:
		return "exhale"
	case Hold:
		return "hold"
	default:
		return "unknown"
	}
}

// Label is the text shown to the user for the phase.
func (p Phase) Label() string {
	switch p {
	case Inhale:
		return "INHALE"
	case Exhale:
		return "EXHALE"
	case Hold:
		return "HOLD YOUR BREATH"
	default:
		return ""
	}
}

// Cue names an audio event emitted on a phase or session transition.
type Cue string

const (
	CueNone          Cue = ""
	CueInhale        Cue = "inhale"
	CueExhale        Cue = "exhale"
	CueHold          Cue = "hold"
	CueComplete      Cue = "complete"
	CueRoundComplete Cue = "roundComplete"
)

// Cues lists every cue that can be emitted.
var Cues = []Cue{
	CueInhale,
	CueExhale,
	CueHold,
	CueComplete,
	CueRoundComplete,
}

// Tone is a preset that shapes the pitch and timbre of the cues.
type Tone string

const (
	Gentle Tone = "gentle"
	Deep   Tone = "deep"
	Ocean  Tone = "ocean"
)

// Tones lists the available tone presets.
var Tones = []Tone{Gentle, Deep, Ocean}

// ParseTone converts a user supplied name to a Tone.
func ParseTone(s string) (Tone, error) {
	for _, t := range Tones {
		if string(t) == s {
			return t, nil
		}
	}

	return "", errUnknownTone.Fmt(s)
}
