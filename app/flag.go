package app

import "github.com/urfave/cli/v2"

var (
	userFlag = &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "Read and log workouts as this user instead of user.id from the config file",
	}

	exerciseFlag = &cli.StringFlag{
		Name:    "exercise",
		Aliases: []string{"e"},
		Usage:   "Skip the picker and start with this exercise (e.g. 'Push-ups')",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a workout is logged",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Do not ring the bell after a workout is logged",
	}

	cmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after each logged workout",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the result as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:    "since",
		Aliases: []string{"s"},
		Usage:   "Only include workouts on or after this date (e.g. '2024-03-01' or '2 weeks ago')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include workouts on or before this date (e.g. 'yesterday')",
	}

	dirFlag = &cli.StringFlag{
		Name:  "dir",
		Usage: "Directory to save the report in (default: report.dir from the config file)",
	}

	verifyFlag = &cli.BoolFlag{
		Name:  "verify",
		Usage: "Read the saved report back and check it against your history",
	}

	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the progress server (default: server.port from the config file)",
	}

	nameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "Your display name",
	}

	ageFlag = &cli.IntFlag{
		Name:  "age",
		Usage: "Your age in years",
	}
)
