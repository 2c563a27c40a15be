package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizdesk/internal/config"
)

// workingDir is replaced in tests.
var workingDir = os.Getwd

// resolveConfig loads the explicit config path, or searches upward from the
// working directory and falls back to defaults.
func resolveConfig(configPath string) (config.Config, string, error) {
	cwd, err := workingDir()
	if err != nil {
		return config.Config{}, "", fmt.Errorf("resolve working directory: %w", err)
	}
	explicit := strings.TrimSpace(configPath)
	if explicit != "" && !filepath.IsAbs(explicit) {
		explicit = filepath.Join(cwd, explicit)
	}
	return config.Resolve(explicit, cwd)
}
