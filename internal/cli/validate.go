package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"quizdesk/internal/content"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) Handler {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to .quizdesk.yml (default: search from the working directory)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, path, err := resolveConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		loaded, err := loadContent(cfg, slog.New(slog.DiscardHandler))
		if err == nil {
			err = content.CheckConsistency(loaded.Questions, loaded.Answers)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		if path == "" {
			path = "(defaults)"
		}
		fmt.Fprintf(stdout, "Config: %s\n", path)
		fmt.Fprintf(stdout, "Questions: %s (%s, %d)\n", loaded.QuestionSource, loaded.Format, len(loaded.Questions))
		fmt.Fprintf(stdout, "Answers: %s (%d)\n", cfg.Answers, len(loaded.Answers))
		fmt.Fprintln(stdout, "Content OK")
		return ExitOK
	}
}
