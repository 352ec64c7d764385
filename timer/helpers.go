package timer

import (
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/charmbracelet/huh"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/fitfusion/fusion/internal/catalog"
	"github.com/fitfusion/fusion/internal/workout"
	"github.com/fitfusion/fusion/report"
)

const pickerHeight = 12

// exerciseOptions lists the catalog grouped by category, in catalog order.
func exerciseOptions(cat *catalog.Catalog) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, cat.Len())

	for _, g := range cat.Groups() {
		for _, name := range g.Exercises {
			label := fmt.Sprintf("%-10s %s", g.Category, name)
			opts = append(opts, huh.NewOption(label, name))
		}
	}

	return opts
}

func (t *Timer) newPicker() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an exercise").
				Options(exerciseOptions(t.catalog)...).
				Height(pickerHeight).
				Value(&t.choice),
		),
	)
}

// runCmd executes the post-workout command.
func runCmd(command string) error {
	if command == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(command)
	if err != nil {
		return errInvalidCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	//nolint:gosec // command comes from the user's own config
	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	return cmd.Run()
}

// postWorkout sends a desktop notification, rings the bell and runs the
// configured command. Failures are logged, never surfaced.
func (t *Timer) postWorkout(rec workout.Record) {
	if t.Opts.Settings.Notify {
		err := beeep.Notify("Workout logged", report.LoggedMessage(rec.Calories), "")
		if err != nil {
			slog.Warn("unable to display notification", slog.Any("error", err))
		}
	}

	if t.Opts.Settings.Sound {
		err := playBell()
		if err != nil {
			slog.Warn("unable to play sound", slog.Any("error", err))
		}
	}

	err := runCmd(t.Opts.Settings.Cmd)
	if err != nil {
		slog.Warn(
			"post-workout command failed",
			slog.String("cmd", t.Opts.Settings.Cmd),
			slog.Any("error", err),
		)
	}
}
