package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/breathe/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the breathe app instance.
func Get() *cli.App {
	breatheApp := &cli.App{
		Name: "breathe",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Breathe is a guided breathing timer for the command-line. Each round
		is a series of paced breaths followed by a breath hold that grows
		longer from one round to the next.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "plan",
				Usage:  "Print the rounds and hold times of a session",
				Flags:  sessionFlags(),
				Action: planAction,
			},
			{
				Name:   "tones",
				Usage:  "List the tone presets and custom sound files",
				Action: tonesAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: append(
			sessionFlags(),
			plainFlag,
			disableNotificationFlag,
			completeCmdFlag,
			noColorFlag,
			debugFlag,
		),
		Action: defaultAction,
		Before: beforeAction,
	}

	return breatheApp
}
