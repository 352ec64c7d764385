// Package app wires the fusion command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/fitfusion/fusion/internal/config"
	"github.com/fitfusion/fusion/report"
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

// Get retrieves the fusion app instance.
func Get() *cli.App {
	fusionApp := &cli.App{
		Name: "fusion",
		Usage: `
		Fusion is a workout stopwatch and progress tracker for the command-line.
		Time your sets, get an estimate of the calories burned and follow your
		progress over time.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "workout",
				Usage:  "Start the workout stopwatch (default command)",
				Flags:  []cli.Flag{exerciseFlag},
				Action: defaultAction,
			},
			{
				Name:   "exercises",
				Usage:  "List the exercise catalog",
				Action: exercisesAction,
			},
			{
				Name:   "stats",
				Usage:  "Summarise your progress: daily active minutes and per-exercise totals",
				Flags:  []cli.Flag{jsonFlag},
				Action: statsAction,
			},
			{
				Name:   "list",
				Usage:  "List logged workouts, optionally within a date range",
				Flags:  []cli.Flag{sinceFlag, untilFlag, jsonFlag},
				Action: listAction,
			},
			{
				Name:   "export",
				Usage:  "Export your workout history to " + report.FileName,
				Flags:  []cli.Flag{dirFlag, verifyFlag},
				Action: exportAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve your progress and a Prometheus endpoint over HTTP",
				Flags:  []cli.Flag{portFlag},
				Action: serveAction,
			},
			{
				Name:      "diet",
				Usage:     "Ask the diet assistant about a food",
				ArgsUsage: "<food>",
				Action:    dietAction,
			},
			{
				Name:   "profile",
				Usage:  "Show or update your profile",
				Flags:  []cli.Flag{nameFlag, ageFlag},
				Action: profileAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			userFlag,
			exerciseFlag,
			disableNotificationFlag,
			noSoundFlag,
			cmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return fusionApp
}
