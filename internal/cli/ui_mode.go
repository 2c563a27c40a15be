package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"quizdesk/internal/config"
)

// uiModeDecision captures whether to use the live UI.
// warning is set when a requested live UI cannot be shown.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = writerIsTerminal

// resolveUIMode determines whether to enable the live UI.
func resolveUIMode(mode string, verbose bool, stdout io.Writer) (uiModeDecision, error) {
	requested := strings.ToLower(strings.TrimSpace(mode))
	if requested == "" {
		requested = config.UIAuto
	}
	switch requested {
	case config.UIPlain:
		return uiModeDecision{}, nil
	case config.UIAuto, config.UILive:
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}

	var blocker string
	switch {
	case verbose:
		blocker = "--verbose logs to stderr"
	case !isTerminal(stdout):
		blocker = "stdout is not a TTY"
	default:
		return uiModeDecision{useLive: true}, nil
	}
	if requested == config.UILive {
		return uiModeDecision{warning: fmt.Sprintf("Live UI requested but %s; using plain output.", blocker)}, nil
	}
	return uiModeDecision{}, nil
}

// writerIsTerminal reports whether w is backed by a terminal file descriptor.
func writerIsTerminal(w io.Writer) bool {
	fd, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(fd.Fd()))
}
