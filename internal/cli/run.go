package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"quizdesk/internal/session"
	"quizdesk/internal/ui/live"
	"quizdesk/internal/ui/plain"
)

var (
	runLive  = live.Run
	runPlain = plain.Run
)

// runQuiz builds the handler for the run command.
func runQuiz(cmd *Command) Handler {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to .quizdesk.yml (default: search from the working directory)")
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain (overrides config)")
		noColor := fs.Bool("no-color", false, "Disable colors in the live UI")
		logPath := fs.String("log", "", "Append a debug log to this file")
		verbose := fs.Bool("verbose", false, "Log to stderr and use plain output")
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, _, err := resolveConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *uiMode != "" {
			cfg.UI = *uiMode
		}
		if *noColor {
			cfg.NoColor = true
		}

		decision, err := resolveUIMode(cfg.UI, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, closeLog, err := newLogger(*logPath, *verbose, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
			return ExitError
		}
		defer closeLog()

		loaded, err := loadContent(cfg, logger)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load quiz content:\n%v\n", err)
			return ExitError
		}
		sess, err := session.New(loaded.Questions, loaded.Answers)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load quiz content:\n%v\n", err)
			return ExitError
		}
		logger.Info("session started", "session_id", sess.ID(), "live", decision.useLive)

		if decision.useLive {
			err = runLive(sess, stdin, stdout, live.Options{
				NoColor:       cfg.NoColor,
				FeedbackDelay: cfg.FeedbackDelay,
				Logger:        logger,
			})
		} else {
			err = runPlain(sess, stdin, stdout, plain.Options{Logger: logger})
		}
		if err != nil {
			logger.Error("quiz ended with error", "error", err)
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
