package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig writes a config file into dir and returns its path.
func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoadResolvesRelativePaths verifies paths resolve against the config directory.
func TestLoadResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `questions: [bank.txt, /abs/questions.docx]
answers: key.txt
feedback_delay: 1500ms
ui: Plain
no_color: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Questions[0] != filepath.Join(dir, "bank.txt") {
		t.Fatalf("unexpected question path %q", cfg.Questions[0])
	}
	if cfg.Questions[1] != "/abs/questions.docx" {
		t.Fatalf("expected absolute path to be kept, got %q", cfg.Questions[1])
	}
	if cfg.Answers != filepath.Join(dir, "key.txt") {
		t.Fatalf("unexpected answers path %q", cfg.Answers)
	}
	if cfg.FeedbackDelay != 1500*time.Millisecond {
		t.Fatalf("unexpected delay %s", cfg.FeedbackDelay)
	}
	if cfg.UI != UIPlain || !cfg.NoColor {
		t.Fatalf("unexpected ui settings %+v", cfg)
	}
}

// TestLoadEmptyFileUsesDefaults verifies an empty config falls back to defaults.
func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(writeConfig(t, dir, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Questions) != len(DefaultQuestionSources) {
		t.Fatalf("expected default sources, got %v", cfg.Questions)
	}
	if cfg.Answers != filepath.Join(dir, DefaultAnswerSource) {
		t.Fatalf("unexpected answers path %q", cfg.Answers)
	}
	if cfg.FeedbackDelay != DefaultFeedbackDelay || cfg.UI != UIAuto {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

// TestParseRejectsUnknownFields verifies typos in keys are reported.
func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("answer: anw.txt\n"))
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
	_, err = Parse([]byte("ui: plain\n---\n{}\n"))
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multiple document error, got %v", err)
	}
}

// TestValidateCollectsIssues verifies every invalid field is reported at once.
func TestValidateCollectsIssues(t *testing.T) {
	cfg := Config{
		Questions:     []string{"q.txt", "q.txt"},
		Answers:       "q.txt",
		FeedbackDelay: time.Minute,
		UI:            "fancy",
	}
	err := Validate(cfg)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := map[string]bool{}
	for _, issue := range validationErr.Issues {
		fields[issue.Field] = true
	}
	for _, want := range []string{"questions[1]", "answers", "feedback_delay", "ui"} {
		if !fields[want] {
			t.Fatalf("expected issue for %s, got %+v", want, validationErr.Issues)
		}
	}
}

// TestResolveFindsParentConfig verifies the upward search and the defaults fallback.
func TestResolveFindsParentConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, path, err := Resolve("", nested)
	if err != nil {
		t.Fatalf("resolve defaults: %v", err)
	}
	if path != "" {
		t.Fatalf("expected defaults, got config %q", path)
	}
	if cfg.Answers != filepath.Join(nested, DefaultAnswerSource) {
		t.Fatalf("expected defaults relative to start dir, got %q", cfg.Answers)
	}

	want := writeConfig(t, root, "answers: key.txt\n")
	cfg, path, err = Resolve("", nested)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}
	if cfg.Answers != filepath.Join(root, "key.txt") {
		t.Fatalf("unexpected answers path %q", cfg.Answers)
	}
}
