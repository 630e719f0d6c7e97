package imcore

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for engine debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// verbose returns true if debug logging is enabled.
func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// defaultLogger is used by contexts created without WithLogger.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
