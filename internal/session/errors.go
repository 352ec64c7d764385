package session

import "github.com/fitfusion/fusion/internal/apperr"

var (
	ErrNoExerciseSelected = &apperr.Error{
		Message: "please select an exercise to begin",
	}

	ErrWorkoutTooShort = &apperr.Error{
		Message: "workout is too short: continue for at least %d seconds (currently %d)",
	}

	ErrInvalidTransition = &apperr.Error{
		Message: "cannot %s a workout that is %s",
	}

	ErrSelectionLocked = &apperr.Error{
		Message: "the exercise cannot be changed once the workout has started",
	}
)
