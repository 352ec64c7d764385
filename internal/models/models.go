// Package models holds the documents persisted by the store.
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/fitfusion/fusion/internal/workout"
)

// StoredWorkout is a workout record as written to the database.
type StoredWorkout struct {
	CreatedAt time.Time `json:"created_at"`
	Date      string    `json:"date"`
	Exercise  string    `json:"exercise"`
	ID        uuid.UUID `json:"id"`
	Duration  int       `json:"duration"`
	Calories  int       `json:"calories"`
}

// NewStoredWorkout wraps rec with a fresh ID.
func NewStoredWorkout(rec workout.Record, createdAt time.Time) StoredWorkout {
	return StoredWorkout{
		ID:        uuid.New(),
		CreatedAt: createdAt,
		Date:      rec.Date,
		Exercise:  rec.Exercise,
		Duration:  rec.Duration,
		Calories:  rec.Calories,
	}
}

// ToRecord drops the storage metadata.
func (s StoredWorkout) ToRecord() workout.Record {
	return workout.Record{
		Date:     s.Date,
		Exercise: s.Exercise,
		Duration: s.Duration,
		Calories: s.Calories,
	}
}

// Profile identifies the person behind a user id.
type Profile struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}
