package timer

import "github.com/fitfusion/fusion/internal/apperr"

var (
	errInvalidCmd = &apperr.Error{
		Message: "unable to parse the post-workout command",
	}

	errUnsavedWorkout = &apperr.Error{
		Message: "workout not saved",
	}
)
