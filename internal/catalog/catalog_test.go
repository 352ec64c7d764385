package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fitfusion/fusion/internal/catalog"
)

func TestDefaultCatalog(t *testing.T) {
	c := catalog.Default()

	if c.Len() != 28 {
		t.Fatalf("expected 28 exercises, got %d", c.Len())
	}

	want := []catalog.Category{
		catalog.Chest,
		catalog.Back,
		catalog.Legs,
		catalog.Shoulders,
		catalog.Arms,
		catalog.Core,
		catalog.Cardio,
	}

	if diff := cmp.Diff(want, c.Categories()); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}

	if c != catalog.Default() {
		t.Error("expected the default catalog to be built once")
	}
}

func TestLookupIntensity(t *testing.T) {
	cases := []struct {
		name     string
		exercise string
		want     float64
	}{
		{"known exercise", "Push-ups", 8.0},
		{"fractional coefficient", "Crunches", 3.8},
		{"cardio", "Burpees", 10.0},
		{"unknown exercise falls back", "Underwater Basket Weaving", 3.5},
		{"empty name falls back", "", 3.5},
		{"lookup is case sensitive", "push-ups", 3.5},
	}

	c := catalog.Default()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.LookupIntensity(tc.exercise)
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := catalog.Default().Lookup("Yoga")
	if err == nil {
		t.Fatal("expected an error for an unknown exercise")
	}

	if !catalog.ErrUnrecognizedExercise.Is(err) {
		t.Errorf("expected ErrUnrecognizedExercise, got %v", err)
	}
}

func TestExercisesAreCopies(t *testing.T) {
	c := catalog.Default()

	names := c.Exercises(catalog.Cardio)
	names[0] = "Hacked"

	if c.Exercises(catalog.Cardio)[0] != "Running" {
		t.Error("catalog must not be mutable through returned slices")
	}

	if c.Exercises("Stretching") != nil {
		t.Error("expected nil for an unknown category")
	}
}

func TestNew(t *testing.T) {
	c := catalog.New(
		[]catalog.Group{
			{Category: catalog.Core, Exercises: []string{"Plank", "Plank", "Hollow Hold"}},
		},
		map[string]float64{"Plank": 3.0},
	)

	want := []string{"Plank", "Hollow Hold"}
	if diff := cmp.Diff(want, c.Exercises(catalog.Core)); diff != "" {
		t.Errorf("exercises mismatch (-want +got):\n%s", diff)
	}

	ex, err := c.Lookup("Hollow Hold")
	if err != nil {
		t.Fatal(err)
	}

	if ex.Intensity != catalog.DefaultIntensity {
		t.Errorf("expected default intensity, got %v", ex.Intensity)
	}

	if ex.Category != catalog.Core {
		t.Errorf("expected category %s, got %s", catalog.Core, ex.Category)
	}
}
