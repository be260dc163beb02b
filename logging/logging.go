// Package logging configures the CLI's structured logger: a package-level
// *slog.Logger built from a level and an output format.
package logging

import (
	"log/slog"
	"os"
)

// Log is the package-level logger used by cmd/lfp's diagnostic output.
// It defaults to an info-level text handler on stdout so callers that
// never call Init still get usable output.
var Log = slog.New(slog.NewTextHandler(os.Stdout, nil))

// Init builds a leveled logger writing to stdout and installs it as Log.
// format selects between "json" and "text" handlers; any other value
// falls back to text, matching the permissive default the CLI's
// config layer already applies to an unrecognized log level.
func Init(level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	Log = slog.New(handler)
	return Log
}
