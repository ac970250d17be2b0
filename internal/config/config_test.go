package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/session"
	"github.com/ayoisaiah/breathe/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Breathing: config.BreathingConfig{
			BreathsPerRound: 30,
			Rounds:          3,
			InitialHold:     30,
			HoldIncrement:   30,
			CustomMode:      false,
			CustomHoldTimes: []int{30, 60, 90},
		},
		Sound: config.SoundConfig{
			Enabled: true,
			Volume:  0.5,
			Tone:    "gentle",
		},
		Display: config.DisplayConfig{
			DarkTheme:   true,
			InhaleColor: "#12EAEA",
			ExhaleColor: "#B0DB43",
			HoldColor:   "#C492B1",
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
	}
}

func modifiedConfig() *config.Config {
	cfg := defaultConfig()
	cfg.Breathing = config.BreathingConfig{
		BreathsPerRound: 40,
		Rounds:          4,
		InitialHold:     60,
		HoldIncrement:   15,
		CustomHoldTimes: []int{45, 90},
	}
	cfg.Sound.Volume = 0.8
	cfg.Sound.Tone = "ocean"
	cfg.Display.DarkTheme = false
	cfg.Display.HoldColor = "#FF8800"
	cfg.Notifications.Enabled = false
	cfg.Settings.CompleteCmd = `notify-send "done breathing"`

	return cfg
}

func copyModified(t *testing.T) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	if err != nil {
		t.Fatal(err)
	}

	return configPath
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte(content), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	return configPath
}

func cliContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("breathe", flag.ContinueOnError)

	for k, v := range flags {
		_ = f.String(k, "", "")

		if err := f.Set(k, v); err != nil {
			t.Fatal(err)
		}
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestViperDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}

	_, err = os.Stat(configPath)
	assert.ErrorIs(t, err, os.ErrNotExist, "config file must not be written")

	assert.Equal(t, session.DefaultSettings(), cfg.SessionSettings())
}

func TestViperReadConfig(t *testing.T) {
	cfg, err := config.New(config.WithViperConfig(copyModified(t)))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(modifiedConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("BREATHE_BREATHING_ROUNDS", "2")
	t.Setenv("BREATHE_SOUND_TONE", "deep")
	t.Setenv("BREATHE_NOTIFICATIONS_ENABLED", "true")

	cfg, err := config.New(config.WithViperConfig(copyModified(t)))
	if err != nil {
		t.Fatal(err)
	}

	want := modifiedConfig()
	want.Breathing.Rounds = 2
	want.Sound.Tone = "deep"
	want.Notifications.Enabled = true

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestCLIOverridesEnv(t *testing.T) {
	t.Setenv("BREATHE_BREATHING_ROUNDS", "2")

	ctx := cliContext(t, map[string]string{
		"rounds":               "5",
		"breaths":              "25",
		"volume":               "0",
		"tone":                 "Gentle",
		"hold-times":           "20, 40,80",
		"mute":                 "true",
		"disable-notification": "true",
		"complete-cmd":         "",
		"plain":                "true",
		"debug":                "true",
	})

	cfg, err := config.New(
		config.WithViperConfig(filepath.Join(t.TempDir(), "config.yml")),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		t.Fatal(err)
	}

	want := defaultConfig()
	want.Breathing.Rounds = 5
	want.Breathing.BreathsPerRound = 25
	want.Breathing.CustomMode = true
	want.Breathing.CustomHoldTimes = []int{20, 40, 80}
	want.Sound.Volume = 0
	want.Sound.Tone = "gentle"
	want.Sound.Enabled = false
	want.Notifications.Enabled = false
	want.CLI = config.CLIConfig{Plain: true, Debug: true}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestCLIUnsetFlagsKeepFileValues(t *testing.T) {
	cfg, err := config.New(
		config.WithViperConfig(copyModified(t)),
		config.WithCLIConfig(cliContext(t, nil)),
	)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(modifiedConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidHoldTimesFlag(t *testing.T) {
	for _, v := range []string{"30,abc", " , "} {
		_, err := config.New(
			config.WithViperConfig(filepath.Join(t.TempDir(), "config.yml")),
			config.WithCLIConfig(cliContext(t, map[string]string{"hold-times": v})),
		)
		assert.Error(t, err, v)
	}
}

func TestValidation(t *testing.T) {
	soundDir := t.TempDir()

	wav := filepath.Join(soundDir, "gong.wav")
	if err := os.WriteFile(wav, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		Name    string
		Content string
		Target  error
		Valid   bool
	}{
		{
			Name:    "too few breaths",
			Content: "breathing:\n  breaths_per_round: 10\n",
			Target:  session.ErrInvalidSettings,
		},
		{
			Name:    "too many rounds",
			Content: "breathing:\n  rounds: 6\n",
			Target:  session.ErrInvalidSettings,
		},
		{
			Name:    "custom hold out of range",
			Content: "breathing:\n  custom_hold_times: [30, 200]\n",
			Target:  session.ErrInvalidSettings,
		},
		{
			Name:    "too many custom holds",
			Content: "breathing:\n  custom_hold_times: [30, 30, 30, 30, 30, 30]\n",
		},
		{
			Name:    "volume out of range",
			Content: "sound:\n  volume: 1.5\n",
			Target:  session.ErrInvalidSettings,
		},
		{
			Name:    "unknown tone",
			Content: "sound:\n  tone: chime\n",
		},
		{
			Name:    "bad color",
			Content: "display:\n  inhale_color: cyan\n",
		},
		{
			Name:    "unsupported cue file",
			Content: "sound:\n  cues:\n    hold: /tmp/gong.aiff\n",
		},
		{
			Name:    "missing cue file",
			Content: "sound:\n  cues:\n    complete: " + filepath.Join(soundDir, "missing.ogg") + "\n",
			Target:  os.ErrNotExist,
		},
		{
			Name:    "existing cue file",
			Content: "sound:\n  cues:\n    round_complete: " + wav + "\n",
			Valid:   true,
		},
		{
			Name:    "malformed yaml",
			Content: "breathing: [\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			cfg, err := config.New(
				config.WithViperConfig(writeConfig(t, tc.Content)),
			)

			if tc.Valid {
				assert.NoError(t, err)
				assert.Equal(t, map[session.Cue]string{
					session.CueRoundComplete: wav,
				}, cfg.CuePaths())

				return
			}

			assert.Error(t, err)

			if tc.Target != nil {
				assert.ErrorIs(t, err, tc.Target)
			}
		})
	}
}

func TestResolveSound(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "bell.ogg")
	assert.Equal(t, abs, config.ResolveSound(abs))

	rel := filepath.Join("sounds", "bell.ogg")
	assert.Equal(t, rel, config.ResolveSound(rel))
}

func TestCueFilesMap(t *testing.T) {
	files := config.CueFiles{Inhale: "in.wav", RoundComplete: "next.ogg"}

	assert.Equal(t, map[session.Cue]string{
		session.CueInhale:        "in.wav",
		session.CueRoundComplete: "next.ogg",
	}, files.Map())
}
