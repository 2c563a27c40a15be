package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// UI modes accepted by the ui setting.
const (
	UIAuto  = "auto"
	UILive  = "live"
	UIPlain = "plain"
)

// DefaultFeedbackDelay is how long answer feedback stays on screen.
const DefaultFeedbackDelay = time.Second

// DefaultQuestionSources lists question files in lookup order.
var DefaultQuestionSources = []string{"questions.docx", "questions.xlsx", "questions.txt"}

// DefaultAnswerSource is the answer key file name.
const DefaultAnswerSource = "anw.txt"

// Config holds quiz settings read from .quizdesk.yml.
type Config struct {
	Questions     []string      `yaml:"questions"`
	Answers       string        `yaml:"answers"`
	FeedbackDelay time.Duration `yaml:"feedback_delay"`
	UI            string        `yaml:"ui"`
	NoColor       bool          `yaml:"no_color"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Questions:     append([]string(nil), DefaultQuestionSources...),
		Answers:       DefaultAnswerSource,
		FeedbackDelay: DefaultFeedbackDelay,
		UI:            UIAuto,
	}
}

// Parse decodes a single YAML document, rejecting unknown fields.
// An empty document yields a zero Config.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
