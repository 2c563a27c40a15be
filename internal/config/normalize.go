package config

import (
	"path/filepath"
	"strings"
)

// Normalize fills defaults, trims values, and resolves relative paths
// against baseDir. An empty baseDir leaves paths as written.
func Normalize(cfg *Config, baseDir string) {
	var sources []string
	for _, source := range cfg.Questions {
		if trimmed := strings.TrimSpace(source); trimmed != "" {
			sources = append(sources, trimmed)
		}
	}
	if len(sources) == 0 {
		sources = append(sources, DefaultQuestionSources...)
	}
	for i, source := range sources {
		sources[i] = resolvePath(baseDir, source)
	}
	cfg.Questions = sources

	cfg.Answers = strings.TrimSpace(cfg.Answers)
	if cfg.Answers == "" {
		cfg.Answers = DefaultAnswerSource
	}
	cfg.Answers = resolvePath(baseDir, cfg.Answers)

	if cfg.FeedbackDelay == 0 {
		cfg.FeedbackDelay = DefaultFeedbackDelay
	}

	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = UIAuto
	}
}

// resolvePath joins relative paths onto baseDir.
func resolvePath(baseDir, path string) string {
	if baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
