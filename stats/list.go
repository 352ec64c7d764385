package stats

import (
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/fitfusion/fusion/internal/timeutil"
	"github.com/fitfusion/fusion/internal/ui"
	"github.com/fitfusion/fusion/internal/workout"
)

const noRecordsMsg = "No workouts found for the specified time range"

func workoutRows(c workout.Collection) [][]string {
	data := [][]string{
		{"#", "DATE", "EXERCISE", "DURATION", "CALORIES"},
	}

	for i, rec := range c {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			rec.Date,
			rec.Exercise,
			timeutil.FormatClock(rec.Duration),
			strconv.Itoa(rec.Calories),
		})
	}

	return data
}

// List prints a table of the workouts logged within [since, until].
func List(w io.Writer, c workout.Collection, since, until string) {
	c = FilterByDate(c, since, until)

	if len(c) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return
	}

	ui.PrintTable(workoutRows(c), w)
}
