package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/fitfusion/fusion/internal/timeutil"
	"github.com/fitfusion/fusion/internal/ui"
)

const (
	barChartChar = "▇"
	noWorkoutMsg = "No workouts logged yet. Run `fusion` to start one"
)

func getSummary(t Totals) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	mins, secs := timeutil.SecsToMinsAndSecs(t.Duration)

	return header +
		fmt.Sprintln("Workouts logged:", ui.Green(t.Sessions)) +
		fmt.Sprintf("Active time: %s\n", ui.Green(fmt.Sprintf("%dm %ds", mins, secs))) +
		fmt.Sprintln("Calories burned:", ui.Green(t.Calories))
}

// dailyBars sizes each bar in tenths of a minute and carries the minutes in
// its label, so short days still draw.
func dailyBars(points []DailyDurationPoint) pterm.Bars {
	bars := make(pterm.Bars, 0, len(points))

	for _, p := range points {
		bars = append(bars, pterm.Bar{
			Value: timeutil.Round(p.Minutes * 10),
			Label: fmt.Sprintf("%s %5.1f", p.Date, p.Minutes),
		})
	}

	return bars
}

func getBarChart(points []DailyDurationPoint) string {
	if len(points) == 0 {
		return ""
	}

	header := ui.Blue("\nDaily breakdown (minutes)")

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithBars(dailyBars(points)).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func summaryTable(summaries []ExerciseSummary) [][]string {
	data := [][]string{
		{"EXERCISE", "SESSIONS", "DURATION", "CALORIES"},
	}

	for _, s := range summaries {
		data = append(data, []string{
			s.Exercise,
			strconv.Itoa(s.Sessions),
			timeutil.FormatClock(s.TotalDuration),
			strconv.Itoa(s.TotalCalories),
		})
	}

	return data
}

// Render prints the progress report to w.
func Render(w io.Writer, p Progress) {
	if p.Totals.Sessions == 0 {
		pterm.Info.Println(noWorkoutMsg)
		return
	}

	fmt.Fprintln(w, strings.TrimSpace(getSummary(p.Totals)+getBarChart(p.Daily)))
	fmt.Fprintln(w)

	ui.PrintTable(summaryTable(p.Exercises), w)
}
