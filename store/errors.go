package store

import "github.com/fitfusion/fusion/internal/apperr"

var (
	ErrFusionRunning = &apperr.Error{
		Message: "is Fusion already running? Only one instance can be active at a time",
	}
	ErrEmptyUser = &apperr.Error{
		Message: "no user id configured: set user.id in the config file or pass --user",
	}
	ErrProfileNotFound = &apperr.Error{
		Message: "no profile saved for user %q",
	}
	ErrClosed = &apperr.Error{
		Message: "database is closed",
	}
)
