package grid

import (
	"log/slog"
	"os"
)

// gridLogLevel controls the level of engine debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var gridLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for every engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		gridLogLevel.Set(slog.LevelDebug)
	} else {
		gridLogLevel.Set(slog.LevelInfo)
	}
}

// gridVerbose returns true if debug logging is enabled.
func gridVerbose() bool {
	return gridLogLevel.Level() <= slog.LevelDebug
}

// gridLogger is the default logger for engines created without WithLogger.
var gridLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: gridLogLevel}))

// Logger returns the package logger, for hosts that want their own
// messages to share the engine's level and output.
func Logger() *slog.Logger {
	return gridLogger
}
