package nutrition

import "github.com/fitfusion/fusion/internal/apperr"

var (
	ErrEmptyQuery = &apperr.Error{
		Message: "please enter a food item",
	}
	ErrRequestFailed = &apperr.Error{
		Message: "nutrition request failed",
	}
	ErrStatus = &apperr.Error{
		Message: "nutrition request failed with status %d",
	}
	ErrUnexpectedResponse = &apperr.Error{
		Message: "unexpected nutrition response format",
	}
	ErrInvalidRecommendation = &apperr.Error{
		Message: "unrecognized recommendation: %q",
	}
)
