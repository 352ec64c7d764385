package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fitfusion/fusion/internal/workout"
)

func rec(date, exercise string, duration, calories int) workout.Record {
	return workout.Record{
		Date:     date,
		Exercise: exercise,
		Duration: duration,
		Calories: calories,
	}
}

func TestDailySeries(t *testing.T) {
	cases := []struct {
		name     string
		input    workout.Collection
		expected []DailyDurationPoint
	}{
		{
			name: "minutes per date",
			input: workout.Collection{
				rec("2024-03-01", "Push-ups", 600, 60),
				rec("2024-03-01", "Squats", 300, 30),
				rec("2024-03-02", "Plank", 60, 4),
			},
			expected: []DailyDurationPoint{
				{Date: "2024-03-01", Minutes: 15.0},
				{Date: "2024-03-02", Minutes: 1.0},
			},
		},
		{
			name: "unordered input and one decimal rounding",
			input: workout.Collection{
				rec("2024-03-09", "Plank", 10, 1),
				rec("2024-03-01", "Plank", 150, 4),
			},
			expected: []DailyDurationPoint{
				{Date: "2024-03-01", Minutes: 2.5},
				{Date: "2024-03-09", Minutes: 0.2},
			},
		},
		{
			name: "records are rounded before summing",
			input: workout.Collection{
				rec("2025-01-01", "Plank", 20, 1),
				rec("2025-01-01", "Plank", 20, 1),
				rec("2025-01-02", "Squats", 7, 1),
				rec("2025-01-02", "Squats", 7, 1),
				rec("2025-01-02", "Squats", 7, 1),
			},
			expected: []DailyDurationPoint{
				{Date: "2025-01-01", Minutes: 0.6},
				{Date: "2025-01-02", Minutes: 0.3},
			},
		},
		{
			name:     "empty",
			input:    nil,
			expected: []DailyDurationPoint{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DailySeries(tc.input)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Fatalf("DailySeries() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExerciseSummaries(t *testing.T) {
	input := workout.Collection{
		rec("2024-03-01", "Push-ups", 120, 16),
		rec("2024-03-01", "Squats", 30, 3),
		rec("2024-03-02", "Push-ups", 60, 14),
	}

	expected := []ExerciseSummary{
		{Exercise: "Push-ups", TotalDuration: 180, TotalCalories: 30, Sessions: 2},
		{Exercise: "Squats", TotalDuration: 30, TotalCalories: 3, Sessions: 1},
	}

	if diff := cmp.Diff(expected, ExerciseSummaries(input)); diff != "" {
		t.Fatalf("ExerciseSummaries() mismatch (-want +got):\n%s", diff)
	}

	if got := ExerciseSummaries(nil); len(got) != 0 {
		t.Fatalf("expected no summaries, got %v", got)
	}
}

func TestExerciseSummariesNaturalOrder(t *testing.T) {
	input := workout.Collection{
		rec("2024-03-01", "Set 10", 60, 1),
		rec("2024-03-01", "Set 2", 60, 1),
		rec("2024-03-01", "Burpees", 60, 1),
	}

	got := ExerciseSummaries(input)

	names := make([]string, 0, len(got))
	for _, s := range got {
		names = append(names, s.Exercise)
	}

	if diff := cmp.Diff([]string{"Burpees", "Set 2", "Set 10"}, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute(t *testing.T) {
	input := workout.Collection{
		rec("2024-03-01", "Push-ups", 120, 16),
		rec("2024-03-02", "Push-ups", 60, 14),
	}

	p := Compute(input)

	if diff := cmp.Diff(Totals{Sessions: 2, Duration: 180, Calories: 30}, p.Totals); diff != "" {
		t.Fatalf("totals mismatch (-want +got):\n%s", diff)
	}

	if len(p.Daily) != 2 || len(p.Exercises) != 1 {
		t.Fatalf("unexpected progress: %+v", p)
	}

	empty := Compute(nil)
	if empty.Totals != (Totals{}) || len(empty.Daily) != 0 || len(empty.Exercises) != 0 {
		t.Fatalf("expected empty progress, got %+v", empty)
	}
}

func TestFilterByDate(t *testing.T) {
	input := workout.Collection{
		rec("2024-03-01", "Plank", 60, 4),
		rec("2024-03-05", "Plank", 60, 4),
		rec("2024-03-09", "Plank", 60, 4),
	}

	cases := []struct {
		since, until string
		expected     int
	}{
		{"", "", 3},
		{"2024-03-05", "", 2},
		{"", "2024-03-05", 2},
		{"2024-03-02", "2024-03-08", 1},
		{"2024-04-01", "", 0},
	}

	for _, tc := range cases {
		if got := FilterByDate(input, tc.since, tc.until); len(got) != tc.expected {
			t.Fatalf("FilterByDate(%q, %q) = %d records, want %d",
				tc.since, tc.until, len(got), tc.expected)
		}
	}
}
