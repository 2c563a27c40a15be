package report

import (
	"fmt"
	"io"
	"strings"

	"quizdesk/internal/content"
	"quizdesk/internal/session"
)

// Entry describes one incorrectly answered question.
type Entry struct {
	Number   int
	Body     string
	Expected content.Letter
}

// Report is the end-of-run summary.
type Report struct {
	SessionID string
	Stats     session.Stats
	Entries   []Entry
}

// Build collects the summary for the session's current run.
func Build(s *session.Session) Report {
	report := Report{SessionID: s.ID(), Stats: s.Stats()}
	for _, number := range s.Missed() {
		body, _ := s.Body(number)
		expected, _ := s.Expected(number)
		report.Entries = append(report.Entries, Entry{Number: number, Body: body, Expected: expected})
	}
	return report
}

// StatsLine renders the running score on one line.
func StatsLine(stats session.Stats) string {
	pct, ok := stats.Percentage()
	if !ok {
		return "No questions answered yet"
	}
	return fmt.Sprintf("Answered: %d | Correct: %d | Score: %.1f%% | Wrong: %d",
		stats.Attempted, stats.Correct, pct, stats.Missed)
}

// Text renders the full report as plain text.
func Text(report Report) string {
	var b strings.Builder
	b.WriteString("Quiz results\n\n")
	fmt.Fprintf(&b, "Answered: %d\n", report.Stats.Attempted)
	fmt.Fprintf(&b, "Correct:  %d\n", report.Stats.Correct)
	fmt.Fprintf(&b, "Wrong:    %d\n", report.Stats.Missed)
	if pct, ok := report.Stats.Percentage(); ok {
		fmt.Fprintf(&b, "Score:    %.1f%%\n", pct)
	} else {
		b.WriteString("Score:    no questions answered yet\n")
	}
	if len(report.Entries) == 0 {
		return b.String()
	}
	b.WriteString("\nIncorrectly answered questions:\n")
	for _, entry := range report.Entries {
		fmt.Fprintf(&b, "\nQuestion %d:\n%s\nCorrect answer: %s\n", entry.Number, entry.Body, entry.Expected)
	}
	return b.String()
}

// Render writes the full report to w.
func Render(w io.Writer, report Report) error {
	_, err := io.WriteString(w, Text(report))
	return err
}
