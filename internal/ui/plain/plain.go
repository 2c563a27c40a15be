// Package plain drives a quiz session over line-oriented input and output.
// It is used when stdout is not a terminal.
package plain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"quizdesk/internal/content"
	"quizdesk/internal/report"
	"quizdesk/internal/session"
)

// Options configures the plain UI.
type Options struct {
	Logger *slog.Logger
}

// action tells the main loop what to do after a prompt.
type action int

const (
	actionContinue action = iota
	actionQuit
)

type runner struct {
	session *session.Session
	lines   *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
}

// Run asks questions until the user quits or input ends.
// End of input prints the report.
func Run(sess *session.Session, in io.Reader, out io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &runner{
		session: sess,
		lines:   bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
	stats := sess.Stats()
	fmt.Fprintf(out, "Quiz %s: %d questions\n", sess.ID(), stats.Total)

	for {
		number, err := sess.PickNext()
		var next action
		switch {
		case errors.Is(err, session.ErrExhausted):
			next, err = r.exhausted()
		case err != nil:
			return err
		default:
			next, err = r.ask(number)
		}
		if err != nil {
			return err
		}
		if next == actionQuit {
			return nil
		}
	}
}

// ask shows one question and reads commands until it is answered.
func (r *runner) ask(number int) (action, error) {
	body, _ := r.session.Body(number)
	r.printQuestion(number, content.FormatBody(body))
	for {
		line, ok := r.prompt("Answer [A-E], f to finish, q to quit: ")
		if !ok {
			return r.endOfInput()
		}
		switch strings.ToLower(line) {
		case "":
			continue
		case "q":
			return actionQuit, nil
		case "f":
			if r.session.Stats().Attempted == 0 {
				fmt.Fprintln(r.out, "No questions answered yet.")
				continue
			}
			return r.finish()
		}
		letter, ok := content.NormalizeLetter(line)
		if !ok {
			fmt.Fprintln(r.out, "Please answer with a letter from A to E.")
			continue
		}
		result, err := r.session.Submit(letter)
		if err != nil {
			return actionQuit, fmt.Errorf("submit answer: %w", err)
		}
		r.logger.Debug("answer submitted",
			"session_id", r.session.ID(),
			"question", number,
			"letter", string(letter),
			"correct", result.Correct,
		)
		r.printResult(result)
		return actionContinue, nil
	}
}

// exhausted offers another pass, a new quiz, or the report.
func (r *runner) exhausted() (action, error) {
	fmt.Fprintf(r.out, "\nAll %d questions have been asked.\n", r.session.Stats().Total)
	for {
		line, ok := r.prompt("r for another pass, n for a new quiz, f to finish, q to quit: ")
		if !ok {
			return r.endOfInput()
		}
		switch strings.ToLower(line) {
		case "r":
			r.session.RestartPass()
			r.logger.Info("question pass restarted", "session_id", r.session.ID())
			return actionContinue, nil
		case "n":
			r.newQuiz()
			return actionContinue, nil
		case "f":
			if r.session.Stats().Attempted == 0 {
				fmt.Fprintln(r.out, "No questions answered yet.")
				continue
			}
			return r.finish()
		case "q":
			return actionQuit, nil
		}
	}
}

// finish prints the report and waits for a new quiz or quit.
func (r *runner) finish() (action, error) {
	r.printReport()
	for {
		line, ok := r.prompt("n for a new quiz, q to quit: ")
		if !ok {
			return actionQuit, r.readErr()
		}
		switch strings.ToLower(line) {
		case "n":
			r.newQuiz()
			return actionContinue, nil
		case "q":
			return actionQuit, nil
		}
	}
}

func (r *runner) newQuiz() {
	r.session.Reset()
	r.logger.Info("new quiz started", "session_id", r.session.ID())
	fmt.Fprintf(r.out, "\nNew quiz %s\n", r.session.ID())
}

// endOfInput prints the report once input is exhausted.
func (r *runner) endOfInput() (action, error) {
	if err := r.readErr(); err != nil {
		return actionQuit, err
	}
	fmt.Fprintln(r.out)
	r.printReport()
	return actionQuit, nil
}

// prompt writes label and reads one trimmed line.
func (r *runner) prompt(label string) (string, bool) {
	fmt.Fprint(r.out, label)
	if !r.lines.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.lines.Text()), true
}

func (r *runner) readErr() error {
	if err := r.lines.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func (r *runner) printQuestion(number int, formatted content.Formatted) {
	stats := r.session.Stats()
	fmt.Fprintf(r.out, "\nQuestion %d | %d of %d left\n", number, stats.Remaining, stats.Total)
	fmt.Fprintln(r.out, formatted.Stem)
	for _, option := range formatted.Options {
		fmt.Fprintf(r.out, "  %s) %s\n", option.Letter, option.Text)
	}
}

func (r *runner) printResult(result session.Result) {
	if result.Correct {
		fmt.Fprintln(r.out, "Correct!")
	} else {
		fmt.Fprintf(r.out, "Wrong: the correct answer is %s\n", result.Expected)
	}
	fmt.Fprintln(r.out, report.StatsLine(r.session.Stats()))
}

func (r *runner) printReport() {
	built := report.Build(r.session)
	r.logger.Info("quiz finished",
		"session_id", built.SessionID,
		"attempted", built.Stats.Attempted,
		"correct", built.Stats.Correct,
	)
	if err := report.Render(r.out, built); err != nil {
		r.logger.Error("render report", "error", err)
	}
}
