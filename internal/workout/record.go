// Package workout turns finished stopwatch sessions into immutable workout
// records
package workout

import (
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/fitfusion/fusion/internal/catalog"
	"github.com/fitfusion/fusion/internal/observability"
	"github.com/fitfusion/fusion/internal/session"
	"github.com/fitfusion/fusion/internal/timeutil"
)

// Record is a single logged workout. It is a plain value: copies never share
// state and nothing refers back to the timer that produced it.
type Record struct {
	Date     string `json:"date"`
	Exercise string `json:"exercise"`
	Duration int    `json:"duration"` // seconds
	Calories int    `json:"calories"`
}

// Collection is the complete, date-ordered list of a user's workouts.
type Collection []Record

// SortByDate orders the collection by date, keeping the relative order of
// workouts logged on the same day.
func (c Collection) SortByDate() {
	slices.SortStableFunc(c, func(a, b Record) int {
		switch {
		case a.Date < b.Date:
			return -1
		case a.Date > b.Date:
			return 1
		}

		return 0
	})
}

// Stopwatch is the part of session.Timer that the factory drives.
type Stopwatch interface {
	State() session.State
	Finish() error
	Elapsed() int
	Reset()
}

// Factory creates workout records from finished stopwatch sessions.
type Factory struct {
	catalog      *catalog.Catalog
	now          func() time.Time
	bodyWeightKg float64
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithNow overrides the clock used to date records.
func WithNow(now func() time.Time) FactoryOption {
	return func(f *Factory) {
		f.now = now
	}
}

// NewFactory returns a Factory that looks exercises up in cat.
func NewFactory(cat *catalog.Catalog, opts ...FactoryOption) *Factory {
	f := &Factory{
		catalog:      cat,
		now:          time.Now,
		bodyWeightKg: DefaultBodyWeightKg,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Finalize finishes the stopwatch (unless already finished) and produces a
// record for exercise. On success the stopwatch is reset to idle. If the
// workout is too short, the stopwatch is left untouched.
func (f *Factory) Finalize(exercise string, sw Stopwatch) (Record, error) {
	if exercise == "" {
		observability.RecordRejection(observability.ReasonNoExercise)
		return Record{}, session.ErrNoExerciseSelected
	}

	if sw.State() != session.Finished {
		if err := sw.Finish(); err != nil {
			if errors.Is(err, session.ErrWorkoutTooShort) {
				observability.RecordRejection(observability.ReasonTooShort)
			}

			return Record{}, err
		}
	}

	elapsed := sw.Elapsed()

	rec := Record{
		Exercise: exercise,
		Duration: elapsed,
		Date:     timeutil.DateKey(f.now()),
		Calories: EstimateCalories(f.intensity(exercise), elapsed, f.bodyWeightKg),
	}

	sw.Reset()

	slog.Info(
		"workout finalized",
		slog.String("exercise", rec.Exercise),
		slog.Int("duration", rec.Duration),
		slog.Int("calories", rec.Calories),
		slog.String("date", rec.Date),
	)

	return rec, nil
}

func (f *Factory) intensity(exercise string) float64 {
	if !f.catalog.Has(exercise) {
		observability.RecordUnrecognizedExercise()
	}

	return f.catalog.LookupIntensity(exercise)
}
