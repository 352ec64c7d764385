package store

import (
	"context"

	"github.com/fitfusion/fusion/internal/models"
	"github.com/fitfusion/fusion/internal/workout"
)

// DB is the database storage interface.
type DB interface {
	// AppendWorkout persists a record for the user and notifies watchers
	AppendWorkout(user string, rec workout.Record) (models.StoredWorkout, error)
	// Workouts returns the user's complete collection ordered by date
	Workouts(user string) (workout.Collection, error)
	// Watch delivers the current collection, then a fresh one after every
	// append for the user. The channel is closed when ctx ends or the
	// database is closed.
	Watch(ctx context.Context, user string) (<-chan workout.Collection, error)
	// SaveProfile creates or overwrites the user's profile
	SaveProfile(user string, p models.Profile) error
	// Profile returns the stored profile for the user
	Profile(user string) (models.Profile, error)
	// Close ends the database connection
	Close() error
	// Open begins a databse connection
	Open() error
}
