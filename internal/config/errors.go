package config

import "github.com/fitfusion/fusion/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidUserID = &apperr.Error{
		Message: "invalid user id %q: use letters, digits, '.', '_', '@' or '-'",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %q (must be debug, info, warn, or error)",
	}

	errInvalidCmd = &apperr.Error{
		Message: "post-workout command cannot be parsed",
	}

	errInvalidPort = &apperr.Error{
		Message: "server port must be between 1 and 65535, got %d",
	}

	errInvalidEndpoint = &apperr.Error{
		Message: "nutrition endpoint must be an absolute URL, got %q",
	}

	errEmptyModel = &apperr.Error{
		Message: "nutrition model cannot be empty",
	}
)
