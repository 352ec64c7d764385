package workout_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/fitfusion/fusion/internal/catalog"
	"github.com/fitfusion/fusion/internal/session"
	"github.com/fitfusion/fusion/internal/testutil"
	"github.com/fitfusion/fusion/internal/workout"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = func() time.Time {
	return time.Date(2024, time.March, 1, 18, 30, 0, 0, time.Local)
}

func newFactory() *workout.Factory {
	return workout.NewFactory(catalog.Default(), workout.WithNow(fixedNow))
}

func runTimer(t *testing.T, exercise string, seconds int) *session.Timer {
	t.Helper()

	clock := &testutil.ManualClock{}
	timer := session.New(session.WithClock(clock))

	require.NoError(t, timer.Select(exercise))
	require.NoError(t, timer.Start())
	clock.Advance(time.Duration(seconds) * time.Second)

	return timer
}

func TestFinalize(t *testing.T) {
	timer := runTimer(t, "Push-ups", 120)

	rec, err := newFactory().Finalize("Push-ups", timer)
	require.NoError(t, err)

	assert.Equal(t, workout.Record{
		Exercise: "Push-ups",
		Duration: 120,
		Date:     "2024-03-01",
		Calories: 20,
	}, rec)

	assert.Equal(t, session.Idle, timer.State())
	assert.Equal(t, 0, timer.Elapsed())
	assert.Empty(t, timer.Exercise())
}

func TestFinalizeAlreadyFinished(t *testing.T) {
	timer := runTimer(t, "Squats", 60)
	require.NoError(t, timer.Finish())

	rec, err := newFactory().Finalize("Squats", timer)
	require.NoError(t, err)
	assert.Equal(t, 60, rec.Duration)
	assert.Equal(t, session.Idle, timer.State())
}

func TestFinalizeTooShort(t *testing.T) {
	timer := runTimer(t, "Push-ups", 9)

	_, err := newFactory().Finalize("Push-ups", timer)
	require.ErrorIs(t, err, workout.ErrWorkoutTooShort)

	assert.Equal(t, session.Running, timer.State())
	assert.Equal(t, 9, timer.Elapsed())

	timer.Reset()
}

func TestFinalizeAtThreshold(t *testing.T) {
	timer := runTimer(t, "Push-ups", session.MinDuration)

	rec, err := newFactory().Finalize("Push-ups", timer)
	require.NoError(t, err)
	assert.Equal(t, session.MinDuration, rec.Duration)
}

func TestFinalizeNoExercise(t *testing.T) {
	timer := runTimer(t, "Push-ups", 30)

	_, err := newFactory().Finalize("", timer)
	require.ErrorIs(t, err, workout.ErrNoExerciseSelected)
	assert.Equal(t, 30, timer.Elapsed())

	timer.Reset()
}

func TestFinalizeUnknownExerciseUsesDefaultIntensity(t *testing.T) {
	cat := catalog.New([]catalog.Group{
		{Category: catalog.Core, Exercises: []string{"Plank"}},
	}, map[string]float64{"Plank": 3.0})

	timer := runTimer(t, "Hula Hoop", 600)

	rec, err := workout.NewFactory(cat, workout.WithNow(fixedNow)).
		Finalize("Hula Hoop", timer)
	require.NoError(t, err)

	assert.Equal(t, workout.EstimateCalories(catalog.DefaultIntensity, 600, workout.DefaultBodyWeightKg), rec.Calories)
}

func TestRecordsAreIndependentValues(t *testing.T) {
	timer := runTimer(t, "Plank", 60)

	rec, err := newFactory().Finalize("Plank", timer)
	require.NoError(t, err)

	c := workout.Collection{rec}
	c[0].Duration = 1

	assert.Equal(t, 60, rec.Duration)
}

func TestSortByDateIsStable(t *testing.T) {
	c := workout.Collection{
		{Date: "2024-03-02", Exercise: "A"},
		{Date: "2024-03-01", Exercise: "B"},
		{Date: "2024-03-02", Exercise: "C"},
		{Date: "2024-03-01", Exercise: "D"},
	}

	c.SortByDate()

	names := make([]string, 0, len(c))
	for _, r := range c {
		names = append(names, r.Exercise)
	}

	assert.Equal(t, []string{"B", "D", "A", "C"}, names)
}
