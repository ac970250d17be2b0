package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/breathe/internal/session"
)

const envPrefix = "BREATHE"

// viper keys, also the layout of the YAML config file.
const (
	keyBreathsPerRound      = "breathing.breaths_per_round"
	keyRounds               = "breathing.rounds"
	keyInitialHold          = "breathing.initial_hold"
	keyHoldIncrement        = "breathing.hold_increment"
	keyCustomMode           = "breathing.custom_mode"
	keyCustomHoldTimes      = "breathing.custom_hold_times"
	keySoundEnabled         = "sound.enabled"
	keySoundVolume          = "sound.volume"
	keySoundTone            = "sound.tone"
	keyCueInhale            = "sound.cues.inhale"
	keyCueExhale            = "sound.cues.exhale"
	keyCueHold              = "sound.cues.hold"
	keyCueComplete          = "sound.cues.complete"
	keyCueRoundComplete     = "sound.cues.round_complete"
	keyDarkTheme            = "display.dark_theme"
	keyInhaleColor          = "display.inhale_color"
	keyExhaleColor          = "display.exhale_color"
	keyHoldColor            = "display.hold_color"
	keyNotificationsEnabled = "notifications.enabled"
	keyCompleteCmd          = "settings.complete_cmd"
)

// WithViperConfig returns an Option that loads configuration from the
// defaults, the YAML file at configPath (if it exists) and BREATHE_*
// environment variables, in increasing order of precedence.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		setDefaults(v)

		err := v.ReadInConfig()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	d := session.DefaultSettings()

	v.SetDefault(keyBreathsPerRound, d.BreathsPerRound)
	v.SetDefault(keyRounds, d.TotalRounds)
	v.SetDefault(keyInitialHold, d.InitialHoldTime)
	v.SetDefault(keyHoldIncrement, d.HoldIncrement)
	v.SetDefault(keyCustomMode, d.CustomMode)
	v.SetDefault(keyCustomHoldTimes, d.CustomHoldTimes)
	v.SetDefault(keySoundEnabled, d.SoundEnabled)
	v.SetDefault(keySoundVolume, d.SoundVolume)
	v.SetDefault(keySoundTone, string(d.BreathingTone))
	v.SetDefault(keyCueInhale, "")
	v.SetDefault(keyCueExhale, "")
	v.SetDefault(keyCueHold, "")
	v.SetDefault(keyCueComplete, "")
	v.SetDefault(keyCueRoundComplete, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyInhaleColor, "#12EAEA")
	v.SetDefault(keyExhaleColor, "#B0DB43")
	v.SetDefault(keyHoldColor, "#C492B1")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyCompleteCmd, "")
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
