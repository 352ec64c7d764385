package stats

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/fitfusion/fusion/internal/workout"
)

func TestRender(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer

	Render(&buf, Compute(workout.Collection{
		rec("2024-03-01", "Push-ups", 120, 16),
		rec("2024-03-02", "Plank", 60, 4),
	}))

	out := buf.String()

	assert.Contains(t, out, "Workouts logged: 2")
	assert.Contains(t, out, "Calories burned: 20")
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "Push-ups")
	assert.Contains(t, out, "02:00")
}

func TestList(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer

	List(&buf, workout.Collection{
		rec("2024-03-01", "Push-ups", 120, 16),
		rec("2024-03-05", "Plank", 60, 4),
	}, "2024-03-02", "")

	out := buf.String()

	assert.Contains(t, out, "Plank")
	assert.NotContains(t, out, "Push-ups")
}

func TestDailyBarsShortDay(t *testing.T) {
	bars := dailyBars(DailySeries(workout.Collection{
		rec("2025-01-01", "Plank", 20, 1),
		rec("2025-01-02", "Running", 600, 86),
	}))

	assert.Len(t, bars, 2)
	assert.Equal(t, 3, bars[0].Value)
	assert.Equal(t, "2025-01-01   0.3", bars[0].Label)
	assert.Equal(t, 100, bars[1].Value)
	assert.Equal(t, "2025-01-02  10.0", bars[1].Label)
}
