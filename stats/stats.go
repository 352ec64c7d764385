// Package stats derives progress views from a user's workout collection
package stats

import (
	"math"
	"slices"

	"github.com/maruel/natural"

	"github.com/fitfusion/fusion/internal/timeutil"
	"github.com/fitfusion/fusion/internal/workout"
)

// DailyDurationPoint is the total active time logged on one date.
type DailyDurationPoint struct {
	Date    string  `json:"date"`
	Minutes float64 `json:"minutes"`
}

// ExerciseSummary aggregates every session of one exercise.
type ExerciseSummary struct {
	Exercise      string `json:"exercise"`
	TotalDuration int    `json:"total_duration"` // seconds
	TotalCalories int    `json:"total_calories"`
	Sessions      int    `json:"sessions"`
}

// Totals spans the whole collection.
type Totals struct {
	Sessions int `json:"sessions"`
	Duration int `json:"duration"` // seconds
	Calories int `json:"calories"`
}

// Progress bundles the derivations computed for one snapshot.
type Progress struct {
	Daily     []DailyDurationPoint `json:"daily"`
	Exercises []ExerciseSummary    `json:"exercises"`
	Totals    Totals               `json:"totals"`
}

// recordMinutes is a record's duration in minutes, rounded to one decimal.
func recordMinutes(seconds int) float64 {
	return math.Round(float64(seconds)/6) / 10
}

// DailySeries groups the collection by date. Each record's duration is
// rounded to a tenth of a minute before it is added to its date. Points are in
// ascending date order and dates without workouts are omitted.
func DailySeries(c workout.Collection) []DailyDurationPoint {
	minutes := make(map[string]float64)

	for _, rec := range c {
		minutes[rec.Date] += recordMinutes(rec.Duration)
	}

	dates := make([]string, 0, len(minutes))
	for d := range minutes {
		dates = append(dates, d)
	}

	slices.Sort(dates)

	points := make([]DailyDurationPoint, 0, len(dates))

	for _, d := range dates {
		points = append(points, DailyDurationPoint{
			Date:    d,
			Minutes: timeutil.RoundTo(minutes[d], 1),
		})
	}

	return points
}

// ExerciseSummaries totals duration, calories and session count per
// exercise, ordered by exercise name in natural order.
func ExerciseSummaries(c workout.Collection) []ExerciseSummary {
	byName := make(map[string]*ExerciseSummary)

	for _, rec := range c {
		s, ok := byName[rec.Exercise]
		if !ok {
			s = &ExerciseSummary{Exercise: rec.Exercise}
			byName[rec.Exercise] = s
		}

		s.TotalDuration += rec.Duration
		s.TotalCalories += rec.Calories
		s.Sessions++
	}

	summaries := make([]ExerciseSummary, 0, len(byName))
	for _, s := range byName {
		summaries = append(summaries, *s)
	}

	slices.SortFunc(summaries, func(a, b ExerciseSummary) int {
		switch {
		case natural.Less(a.Exercise, b.Exercise):
			return -1
		case natural.Less(b.Exercise, a.Exercise):
			return 1
		}

		return 0
	})

	return summaries
}

// Compute derives the full progress view for a snapshot.
func Compute(c workout.Collection) Progress {
	p := Progress{
		Daily:     DailySeries(c),
		Exercises: ExerciseSummaries(c),
	}

	for _, rec := range c {
		p.Totals.Sessions++
		p.Totals.Duration += rec.Duration
		p.Totals.Calories += rec.Calories
	}

	return p
}

// FilterByDate keeps the records whose date lies within [since, until].
// An empty bound is open.
func FilterByDate(c workout.Collection, since, until string) workout.Collection {
	filtered := make(workout.Collection, 0, len(c))

	for _, rec := range c {
		if since != "" && rec.Date < since {
			continue
		}

		if until != "" && rec.Date > until {
			continue
		}

		filtered = append(filtered, rec)
	}

	return filtered
}
