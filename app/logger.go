package app

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
)

var (
	logLevel  = new(slog.LevelVar)
	logWriter *lumberjack.Logger
)

// setupLogger routes the default slog logger to a rotating JSON log file.
func setupLogger(path string) {
	logWriter = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	})

	slog.SetDefault(slog.New(handler))
}

func closeLogger() error {
	if logWriter == nil {
		return nil
	}

	return logWriter.Close()
}
