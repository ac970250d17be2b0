package session

import "slices"

// Bounds of the user adjustable settings.
const (
	MinBreathsPerRound = 20
	MaxBreathsPerRound = 50
	MinRounds          = 1
	MaxRounds          = 5
	MinInitialHold     = 15
	MaxInitialHold     = 120
	MinHoldIncrement   = 15
	MaxHoldIncrement   = 60
	MinCustomHold      = 15
	MaxCustomHold      = 180
	MinVolume          = 0.0
	MaxVolume          = 1.0

	// DefaultCustomHold is used for a round that has no custom hold time.
	DefaultCustomHold = 30
)

// Settings controls the shape of a breathing session.
type Settings struct {
	BreathingTone   Tone    `json:"breathing_tone"`
	CustomHoldTimes []int   `json:"custom_hold_times"`
	BreathsPerRound int     `json:"breaths_per_round"`
	TotalRounds     int     `json:"total_rounds"`
	InitialHoldTime int     `json:"initial_hold_time"`
	HoldIncrement   int     `json:"hold_increment"`
	SoundVolume     float64 `json:"sound_volume"`
	CustomMode      bool    `json:"custom_mode"`
	SoundEnabled    bool    `json:"sound_enabled"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		BreathsPerRound: 30,
		TotalRounds:     3,
		InitialHoldTime: 30,
		HoldIncrement:   30,
		CustomMode:      false,
		CustomHoldTimes: []int{30, 60, 90},
		SoundEnabled:    true,
		SoundVolume:     0.5,
		BreathingTone:   Gentle,
	}
}

// HoldTarget returns the breath-hold duration in seconds for a round
// (1-indexed).
func (s Settings) HoldTarget(round int) int {
	if s.CustomMode {
		i := round - 1
		if i < 0 || i >= len(s.CustomHoldTimes) || s.CustomHoldTimes[i] <= 0 {
			return DefaultCustomHold
		}

		return s.CustomHoldTimes[i]
	}

	return s.InitialHoldTime + s.HoldIncrement*(round-1)
}

// RoundDuration returns the length of a round in seconds, breathing and
// hold included.
func (s Settings) RoundDuration(round int) int {
	return s.BreathsPerRound*breathTicks*2 + s.HoldTarget(round)
}

// Validate reports the first value that is out of range.
func (s Settings) Validate() error {
	checks := []struct {
		name     string
		val      int
		min, max int
	}{
		{"breaths per round", s.BreathsPerRound, MinBreathsPerRound, MaxBreathsPerRound},
		{"total rounds", s.TotalRounds, MinRounds, MaxRounds},
		{"initial hold time", s.InitialHoldTime, MinInitialHold, MaxInitialHold},
		{"hold increment", s.HoldIncrement, MinHoldIncrement, MaxHoldIncrement},
	}

	for _, c := range checks {
		if c.val < c.min || c.val > c.max {
			return ErrInvalidSettings.Fmt(c.name, c.min, c.max, c.val)
		}
	}

	for _, v := range s.CustomHoldTimes {
		if v < MinCustomHold || v > MaxCustomHold {
			return ErrInvalidSettings.Fmt(
				"custom hold time",
				MinCustomHold,
				MaxCustomHold,
				v,
			)
		}
	}

	if s.SoundVolume < MinVolume || s.SoundVolume > MaxVolume {
		return ErrInvalidSettings.Fmt("sound volume", MinVolume, MaxVolume, s.SoundVolume)
	}

	if _, err := ParseTone(string(s.BreathingTone)); err != nil {
		return err
	}

	return nil
}

// Clamp returns a copy of the settings with every value moved to the
// nearest valid bound. An unknown tone falls back to Gentle.
func (s Settings) Clamp() Settings {
	s.BreathsPerRound = min(max(s.BreathsPerRound, MinBreathsPerRound), MaxBreathsPerRound)
	s.TotalRounds = min(max(s.TotalRounds, MinRounds), MaxRounds)
	s.InitialHoldTime = min(max(s.InitialHoldTime, MinInitialHold), MaxInitialHold)
	s.HoldIncrement = min(max(s.HoldIncrement, MinHoldIncrement), MaxHoldIncrement)
	s.SoundVolume = min(max(s.SoundVolume, MinVolume), MaxVolume)

	holds := make([]int, len(s.CustomHoldTimes))
	for i, v := range s.CustomHoldTimes {
		holds[i] = min(max(v, MinCustomHold), MaxCustomHold)
	}

	s.CustomHoldTimes = holds

	if _, err := ParseTone(string(s.BreathingTone)); err != nil {
		s.BreathingTone = Gentle
	}

	return s
}

// Patch is a partial settings update. Nil fields are left unchanged.
type Patch struct {
	BreathsPerRound *int
	TotalRounds     *int
	InitialHoldTime *int
	HoldIncrement   *int
	CustomMode      *bool
	CustomHoldTimes []int
	SoundEnabled    *bool
	SoundVolume     *float64
	BreathingTone   *Tone
}

// Apply returns a copy of s with the patch applied.
func (p Patch) Apply(s Settings) Settings {
	if p.BreathsPerRound != nil {
		s.BreathsPerRound = *p.BreathsPerRound
	}

	if p.TotalRounds != nil {
		s.TotalRounds = *p.TotalRounds
	}

	if p.InitialHoldTime != nil {
		s.InitialHoldTime = *p.InitialHoldTime
	}

	if p.HoldIncrement != nil {
		s.HoldIncrement = *p.HoldIncrement
	}

	if p.CustomMode != nil {
		s.CustomMode = *p.CustomMode
	}

	if p.CustomHoldTimes != nil {
		s.CustomHoldTimes = slices.Clone(p.CustomHoldTimes)
	} else {
		s.CustomHoldTimes = slices.Clone(s.CustomHoldTimes)
	}

	if p.SoundEnabled != nil {
		s.SoundEnabled = *p.SoundEnabled
	}

	if p.SoundVolume != nil {
		s.SoundVolume = *p.SoundVolume
	}

	if p.BreathingTone != nil {
		s.BreathingTone = *p.BreathingTone
	}

	return s
}
