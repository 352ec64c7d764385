// Package report exports workout history and prints user-facing notices
package report

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"

	"github.com/fitfusion/fusion/internal/osutil"
)

// LoggedMessage is the confirmation shown once a workout is stored.
func LoggedMessage(calories int) string {
	return fmt.Sprintf(
		"Great job! Workout logged. You burned an estimated %d calories.",
		calories,
	)
}

// WorkoutLogged announces a finalized workout.
func WorkoutLogged(calories int) {
	pterm.Success.Println(LoggedMessage(calories))
}

// Exported confirms that the report was written to path.
func Exported(path string) {
	pterm.Success.Printfln("report saved to %s", path)
}

// Notice prints a non-fatal condition the user should know about.
func Notice(err error) {
	pterm.Warning.Println(err)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Fatal(err error) tea.Cmd {
	pterm.Error.Println(err)
	return tea.Quit
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(osutil.ExitError)
}
