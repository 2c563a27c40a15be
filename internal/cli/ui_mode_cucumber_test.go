//go:build cucumber

package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"
)

// TestUIModeScenarios runs the interface selection feature scenarios.
func TestUIModeScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "ui_mode.feature")
	suite := godog.TestSuite{
		Name:                "ui-mode",
		ScenarioInitializer: InitializeUIModeScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeUIModeScenario wires steps for interface selection scenarios.
func InitializeUIModeScenario(ctx *godog.ScenarioContext) {
	state := &uiModeScenarioState{}
	orig := isTerminal
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		isTerminal = func(io.Writer) bool { return state.isTTY }
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		isTerminal = orig
		return ctx, nil
	})

	ctx.Step(`^a TTY stdout$`, state.givenTTY)
	ctx.Step(`^stdout is not a TTY$`, state.givenNonTTY)
	ctx.Step(`^I run quizdesk with ui mode "([^"]*)"$`, state.whenIRun)
	ctx.Step(`^I run quizdesk verbosely with ui mode "([^"]*)"$`, state.whenIRunVerbosely)
	ctx.Step(`^the live interface is used$`, state.thenLive)
	ctx.Step(`^plain output is used without a warning$`, state.thenPlainQuiet)
	ctx.Step(`^plain output is used with a warning$`, state.thenPlainWarned)
}

type uiModeScenarioState struct {
	isTTY    bool
	decision uiModeDecision
}

// reset clears scenario state.
func (s *uiModeScenarioState) reset() {
	s.isTTY = false
	s.decision = uiModeDecision{}
}

// givenTTY marks stdout as a TTY.
func (s *uiModeScenarioState) givenTTY() error {
	s.isTTY = true
	return nil
}

// givenNonTTY marks stdout as non-TTY.
func (s *uiModeScenarioState) givenNonTTY() error {
	s.isTTY = false
	return nil
}

// whenIRun evaluates the ui mode decision.
func (s *uiModeScenarioState) whenIRun(mode string) error {
	return s.resolve(mode, false)
}

// whenIRunVerbosely evaluates the ui mode decision with verbose logging.
func (s *uiModeScenarioState) whenIRunVerbosely(mode string) error {
	return s.resolve(mode, true)
}

func (s *uiModeScenarioState) resolve(mode string, verbose bool) error {
	decision, err := resolveUIMode(mode, verbose, nil)
	if err != nil {
		return err
	}
	s.decision = decision
	return nil
}

// thenLive asserts the live UI is enabled.
func (s *uiModeScenarioState) thenLive() error {
	if !s.decision.useLive {
		return fmt.Errorf("expected live UI to be enabled")
	}
	return nil
}

// thenPlainQuiet asserts plain output without a warning.
func (s *uiModeScenarioState) thenPlainQuiet() error {
	if s.decision.useLive || s.decision.warning != "" {
		return fmt.Errorf("expected quiet plain output, got %+v", s.decision)
	}
	return nil
}

// thenPlainWarned asserts plain output with a warning.
func (s *uiModeScenarioState) thenPlainWarned() error {
	if s.decision.useLive || s.decision.warning == "" {
		return fmt.Errorf("expected plain output with a warning, got %+v", s.decision)
	}
	return nil
}
