package app

import "github.com/urfave/cli/v2"

var (
	breathsFlag = &cli.UintFlag{
		Name:    "breaths",
		Aliases: []string{"b"},
		Usage:   "Breaths per round, from 20 to 50 (default: 30)",
	}

	roundsFlag = &cli.UintFlag{
		Name:    "rounds",
		Aliases: []string{"r"},
		Usage:   "Number of rounds, from 1 to 5 (default: 3)",
	}

	holdFlag = &cli.UintFlag{
		Name:  "hold",
		Usage: "Hold time of the first round in seconds, from 15 to 120 (default: 30)",
	}

	incrementFlag = &cli.UintFlag{
		Name:    "increment",
		Aliases: []string{"i"},
		Usage:   "Seconds added to the hold time after each round, from 15 to 60 (default: 30)",
	}

	holdTimesFlag = &cli.StringFlag{
		Name:    "hold-times",
		Aliases: []string{"ht"},
		Usage:   "Comma-delimited hold time of each round in seconds (e.g. 30,60,90). Overrides --hold and --increment",
	}

	toneFlag = &cli.StringFlag{
		Name:  "tone",
		Usage: "Tone of the audio cues. Options: gentle, deep, ocean",
	}

	volumeFlag = &cli.Float64Flag{
		Name:  "volume",
		Usage: "Volume of the audio cues, from 0.0 to 1.0",
	}

	muteFlag = &cli.BoolFlag{
		Name:    "mute",
		Aliases: []string{"m"},
		Usage:   "Disable the audio cues",
	}

	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Print each phase change on its own line instead of starting the interactive timer",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	completeCmdFlag = &cli.StringFlag{
		Name:    "complete-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after a session is completed",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug level entries to the log file",
	}
)

// sessionFlags are the flags that shape a session. They are accepted by every
// command that reads the configuration.
func sessionFlags() []cli.Flag {
	return []cli.Flag{
		breathsFlag,
		roundsFlag,
		holdFlag,
		incrementFlag,
		holdTimesFlag,
		toneFlag,
		volumeFlag,
		muteFlag,
	}
}
