package catalog

import "github.com/fitfusion/fusion/internal/apperr"

// ErrUnrecognizedExercise is never fatal: callers fall back to
// DefaultIntensity.
var ErrUnrecognizedExercise = &apperr.Error{
	Message: "unrecognized exercise: %q",
}
