package report

import "github.com/fitfusion/fusion/internal/apperr"

var (
	ErrEmptyCollection = &apperr.Error{
		Message: "no workouts to export yet: log a workout first",
	}
	ErrWriteReport = &apperr.Error{
		Message: "unable to save report",
	}
	ErrMalformedReport = &apperr.Error{
		Message: "malformed report at line %d: %v",
	}
)
