package log

import (
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// DebugFromEnv reports whether debug logging is requested with the DEBUG environment variable.
func DebugFromEnv() bool {
	debugValues := []string{"1", "true", "yes"}
	return slices.Contains(debugValues, strings.ToLower(os.Getenv("DEBUG")))
}

// Init sets the default slog logger writing to stderr. Messages are colourised if stderr is a terminal.
func Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(NewHandler(os.Stderr, level, term.IsTerminal(int(os.Stderr.Fd())))))
	slog.Debug("Logger initialised.")
}

// NewHandler returns a tint handler for terminals and a plain SlogTextHandler otherwise. Neither of them
// prints timestamps as the output is meant for a person running the CLI.
func NewHandler(w io.Writer, level slog.Level, terminal bool) slog.Handler {
	if terminal {
		return tint.NewHandler(w, &tint.Options{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && len(groups) == 0 {
					return slog.Attr{}
				}
				return a
			},
		})
	}
	return NewSlogTextHandler(w, &slog.HandlerOptions{Level: level})
}
