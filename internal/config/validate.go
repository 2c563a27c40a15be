package config

import (
	"fmt"
	"strings"
	"time"
)

// maxFeedbackDelay bounds how long feedback may block the next question.
const maxFeedbackDelay = 10 * time.Second

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config.
func Validate(cfg Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if len(cfg.Questions) == 0 {
		add("questions", "at least one question file is required")
	}
	seen := map[string]struct{}{}
	for i, source := range cfg.Questions {
		if _, dup := seen[source]; dup {
			add(fmt.Sprintf("questions[%d]", i), fmt.Sprintf("duplicate path %q", source))
		}
		seen[source] = struct{}{}
	}
	if cfg.Answers == "" {
		add("answers", "is required")
	}
	if _, clash := seen[cfg.Answers]; clash {
		add("answers", "must differ from the question files")
	}
	if cfg.FeedbackDelay < 0 {
		add("feedback_delay", "must be >= 0")
	} else if cfg.FeedbackDelay > maxFeedbackDelay {
		add("feedback_delay", fmt.Sprintf("must be <= %s", maxFeedbackDelay))
	}
	switch cfg.UI {
	case UIAuto, UILive, UIPlain:
	default:
		add("ui", fmt.Sprintf("unsupported mode %q (expected auto|live|plain)", cfg.UI))
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
