package logger

import (
	"io"
	"log/slog"
	"os"
)

// SetupGlobal installs the process-wide slog logger.
// Output goes to stdout unless w is given.
func SetupGlobal(debug bool, jsonFormat bool, w ...io.Writer) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stdout
	if len(w) > 0 && w[0] != nil {
		out = w[0]
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}

	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	slog.SetDefault(slog.New(handler))
}
