package app

import "github.com/fitfusion/fusion/internal/apperr"

var (
	errInvalidDateRange = &apperr.Error{
		Message: "--since (%s) is after --until (%s)",
	}

	errReportMismatch = &apperr.Error{
		Message: "report %s has %d workouts, expected %d",
	}

	errInvalidAge = &apperr.Error{
		Message: "invalid age %d: must not be negative",
	}

	errMissingAPIKey = &apperr.Error{
		Message: "the diet assistant needs an API key: set nutrition.api_key in the config file or FUSION_NUTRITION_API_KEY",
	}
)
