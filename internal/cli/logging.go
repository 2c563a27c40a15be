package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// newLogger builds the process logger. Logs are discarded unless a log file
// is given or verbose output is requested; the log file takes precedence.
func newLogger(logPath string, verbose bool, stderr io.Writer) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	switch {
	case logPath != "":
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewJSONHandler(file, opts)), file.Close, nil
	case verbose:
		return slog.New(slog.NewTextHandler(stderr, opts)), noop, nil
	default:
		return slog.New(slog.DiscardHandler), noop, nil
	}
}
