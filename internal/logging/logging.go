package logging

import (
	"io"
	"log/slog"
	"os"
)

// level is shared by every handler Setup installs, so Debug calls made
// by packages holding a With logger follow later verbosity changes.
var level = new(slog.LevelVar)

var logger = slog.New(newHandler(os.Stderr, false))

// Setup installs the diagnostic logger. Verbose lowers the level to
// debug; jsonOutput switches to one JSON object per line. A nil writer
// means stderr.
func Setup(verbose bool, jsonOutput bool, w io.Writer) {
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
	if w == nil {
		w = os.Stderr
	}
	logger = slog.New(newHandler(w, jsonOutput))
}

func newHandler(w io.Writer, jsonOutput bool) slog.Handler {
	if jsonOutput {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		// Terminal output is read next to the command that produced it.
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// With returns a logger carrying the given attributes. It writes through
// the handler installed at the time of the call.
func With(args ...any) *slog.Logger {
	return logger.With(args...)
}
