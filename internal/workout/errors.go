package workout

import "github.com/fitfusion/fusion/internal/session"

// Re-exported so that callers of Finalize need not import session.
var (
	ErrNoExerciseSelected = session.ErrNoExerciseSelected
	ErrWorkoutTooShort    = session.ErrWorkoutTooShort
)
