package config

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/ayoisaiah/breathe/internal/pathutil"
	"github.com/ayoisaiah/breathe/internal/session"
	"github.com/ayoisaiah/breathe/internal/sound"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.SessionSettings().Validate(); err != nil {
		return err
	}

	if n := len(c.Breathing.CustomHoldTimes); n > session.MaxRounds {
		return errTooManyHoldTimes.Fmt(n, session.MaxRounds)
	}

	if err := c.validateColors(); err != nil {
		return err
	}

	for cue, path := range c.CuePaths() {
		if err := validateSound(cue, path); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateColors() error {
	colors := []struct {
		name, value string
	}{
		{"inhale", c.Display.InhaleColor},
		{"exhale", c.Display.ExhaleColor},
		{"hold", c.Display.HoldColor},
	}

	for _, v := range colors {
		if !hexColorRegex.MatchString(v.value) {
			return errInvalidColor.Fmt(v.name, v.value)
		}
	}

	return nil
}

// CuePaths returns the absolute path of each configured cue file.
func (c *Config) CuePaths() map[session.Cue]string {
	m := c.Sound.Cues.Map()

	for cue, path := range m {
		m[cue] = ResolveSound(path)
	}

	return m
}

// ResolveSound turns a bare sound file name into a path inside the sounds
// data directory. Other paths are returned unchanged.
func ResolveSound(name string) string {
	if filepath.IsAbs(name) || filepath.Base(name) != name {
		return name
	}

	return filepath.Join(pathutil.SoundDir(), name)
}

func validateSound(cue session.Cue, path string) error {
	if !sound.SupportedFile(path) {
		return errInvalidSoundFormat.Fmt(path)
	}

	if _, err := os.Stat(path); err != nil {
		return errUnknownSound.Fmt(cue, path).Wrap(err)
	}

	return nil
}
