// Package catalog holds the read-only table of exercises a workout can be
// logged against
package catalog

import (
	"log/slog"
	"slices"
	"sync"
)

// DefaultIntensity is used for exercises missing from the catalog.
const DefaultIntensity = 3.5

// Category groups related exercises.
type Category string

const (
	Chest     Category = "Chest"
	Back      Category = "Back"
	Legs      Category = "Legs"
	Shoulders Category = "Shoulders"
	Arms      Category = "Arms"
	Core      Category = "Core"
	Cardio    Category = "Cardio"
)

// Exercise is a single catalog entry.
type Exercise struct {
	Name      string
	Category  Category
	Intensity float64
}

// Group is an ordered list of exercise names belonging to one category.
type Group struct {
	Category  Category
	Exercises []string
}

// Catalog is an immutable exercise lookup table. The zero value is empty but
// usable.
type Catalog struct {
	groups    []Group
	exercises map[string]Exercise
}

var builtinGroups = []Group{
	{Chest, []string{"Push-ups", "Bench Press", "Dumbbell Flyes", "Incline Press"}},
	{Back, []string{"Pull-ups", "Deadlifts", "Bent-over Rows", "Lat Pulldowns"}},
	{Legs, []string{"Squats", "Lunges", "Leg Press", "Calf Raises"}},
	{Shoulders, []string{"Overhead Press", "Lateral Raises", "Front Raises", "Shrugs"}},
	{Arms, []string{"Bicep Curls", "Tricep Dips", "Hammer Curls", "Tricep Pushdowns"}},
	{Core, []string{"Plank", "Crunches", "Leg Raises", "Russian Twists"}},
	{Cardio, []string{"Running", "Cycling", "Jumping Jacks", "Burpees"}},
}

// Metabolic equivalent of task per exercise.
var builtinIntensity = map[string]float64{
	"Push-ups": 8.0, "Bench Press": 5.0, "Dumbbell Flyes": 4.0, "Incline Press": 5.0,
	"Pull-ups": 8.0, "Deadlifts": 8.0, "Bent-over Rows": 6.0, "Lat Pulldowns": 4.0,
	"Squats": 5.5, "Lunges": 4.0, "Leg Press": 5.0, "Calf Raises": 3.0,
	"Overhead Press": 5.0, "Lateral Raises": 3.0, "Front Raises": 3.0, "Shrugs": 3.0,
	"Bicep Curls": 3.0, "Tricep Dips": 4.0, "Hammer Curls": 3.0, "Tricep Pushdowns": 3.0,
	"Plank": 3.0, "Crunches": 3.8, "Leg Raises": 3.5, "Russian Twists": 3.5,
	"Running": 9.8, "Cycling": 7.5, "Jumping Jacks": 8.0, "Burpees": 10.0,
}

// Default returns the built-in catalog. It is built once and shared.
var Default = sync.OnceValue(func() *Catalog {
	return New(builtinGroups, builtinIntensity)
})

// New builds a catalog from an ordered category listing and a parallel
// name -> intensity table. Names without an intensity get DefaultIntensity;
// a name repeated within a category is kept once.
func New(groups []Group, intensity map[string]float64) *Catalog {
	c := &Catalog{
		exercises: make(map[string]Exercise),
	}

	for _, g := range groups {
		names := make([]string, 0, len(g.Exercises))

		for _, name := range g.Exercises {
			if slices.Contains(names, name) {
				continue
			}

			names = append(names, name)

			coeff, ok := intensity[name]
			if !ok || coeff <= 0 {
				coeff = DefaultIntensity
			}

			c.exercises[name] = Exercise{
				Name:      name,
				Category:  g.Category,
				Intensity: coeff,
			}
		}

		c.groups = append(c.groups, Group{Category: g.Category, Exercises: names})
	}

	return c
}

// Categories returns the catalog categories in display order.
func (c *Catalog) Categories() []Category {
	categories := make([]Category, len(c.groups))

	for i, g := range c.groups {
		categories[i] = g.Category
	}

	return categories
}

// Exercises returns the exercise names of a category in display order.
func (c *Catalog) Exercises(category Category) []string {
	for _, g := range c.groups {
		if g.Category == category {
			return slices.Clone(g.Exercises)
		}
	}

	return nil
}

// Groups returns a copy of the full category listing.
func (c *Catalog) Groups() []Group {
	groups := make([]Group, len(c.groups))

	for i, g := range c.groups {
		groups[i] = Group{Category: g.Category, Exercises: slices.Clone(g.Exercises)}
	}

	return groups
}

// Has reports whether name is a known exercise.
func (c *Catalog) Has(name string) bool {
	_, ok := c.exercises[name]
	return ok
}

// Lookup retrieves an exercise by name.
func (c *Catalog) Lookup(name string) (Exercise, error) {
	ex, ok := c.exercises[name]
	if !ok {
		return Exercise{}, ErrUnrecognizedExercise.Fmt(name)
	}

	return ex, nil
}

// LookupIntensity returns the intensity coefficient for name, or
// DefaultIntensity if the exercise is unknown. It never fails.
func (c *Catalog) LookupIntensity(name string) float64 {
	ex, err := c.Lookup(name)
	if err != nil {
		slog.Warn(
			"falling back to default intensity",
			slog.String("exercise", name),
			slog.Float64("intensity", DefaultIntensity),
			slog.Any("error", err),
		)

		return DefaultIntensity
	}

	return ex.Intensity
}

// Len returns the number of exercises in the catalog.
func (c *Catalog) Len() int {
	return len(c.exercises)
}
