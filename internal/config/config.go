package config

import (
	"io"
	"os"

	"github.com/ayoisaiah/breathe/internal/session"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Breathing     BreathingConfig    `mapstructure:"breathing"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// BreathingConfig holds the shape of a session.
	BreathingConfig struct {
		CustomHoldTimes []int `mapstructure:"custom_hold_times"`
		BreathsPerRound int   `mapstructure:"breaths_per_round"`
		Rounds          int   `mapstructure:"rounds"`
		InitialHold     int   `mapstructure:"initial_hold"`
		HoldIncrement   int   `mapstructure:"hold_increment"`
		CustomMode      bool  `mapstructure:"custom_mode"`
	}

	// SoundConfig holds audio cue settings.
	SoundConfig struct {
		Tone    string   `mapstructure:"tone"`
		Cues    CueFiles `mapstructure:"cues"`
		Volume  float64  `mapstructure:"volume"`
		Enabled bool     `mapstructure:"enabled"`
	}

	// CueFiles maps each cue to an optional sound file. A bare file name is
	// looked up in the sounds data directory.
	CueFiles struct {
		Inhale        string `mapstructure:"inhale"`
		Exhale        string `mapstructure:"exhale"`
		Hold          string `mapstructure:"hold"`
		Complete      string `mapstructure:"complete"`
		RoundComplete string `mapstructure:"round_complete"`
	}

	// DisplayConfig holds display related settings.
	DisplayConfig struct {
		InhaleColor string `mapstructure:"inhale_color"`
		ExhaleColor string `mapstructure:"exhale_color"`
		HoldColor   string `mapstructure:"hold_color"`
		DarkTheme   bool   `mapstructure:"dark_theme"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		CompleteCmd string `mapstructure:"complete_cmd"`
	}

	// CLIConfig holds options that only exist on the command line.
	CLIConfig struct {
		Plain   bool
		Debug   bool
		NoColor bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies the options in order, so later
// options take precedence.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// SessionSettings converts the loaded configuration into the settings of a
// breathing session.
func (c *Config) SessionSettings() session.Settings {
	return session.Settings{
		BreathsPerRound: c.Breathing.BreathsPerRound,
		TotalRounds:     c.Breathing.Rounds,
		InitialHoldTime: c.Breathing.InitialHold,
		HoldIncrement:   c.Breathing.HoldIncrement,
		CustomMode:      c.Breathing.CustomMode,
		CustomHoldTimes: append([]int(nil), c.Breathing.CustomHoldTimes...),
		SoundEnabled:    c.Sound.Enabled,
		SoundVolume:     c.Sound.Volume,
		BreathingTone:   session.Tone(c.Sound.Tone),
	}
}

// Map returns the configured cue files keyed by cue, omitting cues that use
// the synthesised tone.
func (f CueFiles) Map() map[session.Cue]string {
	m := make(map[session.Cue]string)

	for cue, path := range map[session.Cue]string{
		session.CueInhale:        f.Inhale,
		session.CueExhale:        f.Exhale,
		session.CueHold:          f.Hold,
		session.CueComplete:      f.Complete,
		session.CueRoundComplete: f.RoundComplete,
	} {
		if path != "" {
			m[cue] = path
		}
	}

	return m
}
