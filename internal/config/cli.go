package config

import (
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options. Pointer fields
// are nil when the flag was not set.
type CLIOptions struct {
	BreathsPerRound *int
	Rounds          *int
	InitialHold     *int
	HoldIncrement   *int
	Volume          *float64
	CompleteCmd     *string
	Tone            string
	HoldTimes       string
	Mute            bool
	DisableNotify   bool
	Plain           bool
	Debug           bool
	NoColor         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags that were explicitly set override earlier sources.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			BreathsPerRound: intFlag(ctx, "breaths"),
			Rounds:          intFlag(ctx, "rounds"),
			InitialHold:     intFlag(ctx, "hold"),
			HoldIncrement:   intFlag(ctx, "increment"),
			Tone:            ctx.String("tone"),
			HoldTimes:       ctx.String("hold-times"),
			Mute:            ctx.Bool("mute"),
			DisableNotify:   ctx.Bool("disable-notification"),
			Plain:           ctx.Bool("plain"),
			Debug:           ctx.Bool("debug"),
			NoColor:         ctx.Bool("no-color"),
		}

		if ctx.IsSet("volume") {
			vol := ctx.Float64("volume")
			opts.Volume = &vol
		}

		if ctx.IsSet("complete-cmd") {
			cmd := ctx.String("complete-cmd")
			opts.CompleteCmd = &cmd
		}

		return applyCLIOptions(c, opts)
	}
}

func intFlag(ctx *cli.Context, name string) *int {
	if !ctx.IsSet(name) {
		return nil
	}

	v := int(ctx.Uint(name))

	return &v
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.BreathsPerRound != nil {
		c.Breathing.BreathsPerRound = *opts.BreathsPerRound
	}

	if opts.Rounds != nil {
		c.Breathing.Rounds = *opts.Rounds
	}

	if opts.InitialHold != nil {
		c.Breathing.InitialHold = *opts.InitialHold
	}

	if opts.HoldIncrement != nil {
		c.Breathing.HoldIncrement = *opts.HoldIncrement
	}

	if opts.HoldTimes != "" {
		holds, err := parseHoldTimes(opts.HoldTimes)
		if err != nil {
			return err
		}

		c.Breathing.CustomHoldTimes = holds
		c.Breathing.CustomMode = true
	}

	applyCLISound(c, opts)

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.CompleteCmd != nil {
		c.Settings.CompleteCmd = *opts.CompleteCmd
	}

	c.CLI = CLIConfig{
		Plain:   opts.Plain,
		Debug:   opts.Debug,
		NoColor: opts.NoColor,
	}

	return nil
}

// applyCLISound handles sound-related CLI options.
func applyCLISound(c *Config, opts CLIOptions) {
	if opts.Tone != "" {
		c.Sound.Tone = strings.ToLower(opts.Tone)
	}

	if opts.Volume != nil {
		c.Sound.Volume = *opts.Volume
	}

	if opts.Mute {
		c.Sound.Enabled = false
	}
}

// parseHoldTimes parses a comma-separated list of hold times in seconds.
func parseHoldTimes(s string) ([]int, error) {
	split := strings.Split(s, ",")

	holds := make([]int, 0, len(split))

	for _, v := range split {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errInvalidHoldTimes.Fmt(s).Wrap(err)
		}

		holds = append(holds, n)
	}

	if len(holds) == 0 {
		return nil, errInvalidHoldTimes.Fmt(s)
	}

	return holds, nil
}
