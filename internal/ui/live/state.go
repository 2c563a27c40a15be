package live

import (
	"quizdesk/internal/content"
	"quizdesk/internal/session"
)

// phase is the screen currently shown.
type phase int

const (
	// phaseQuestion waits for an answer to the question on display.
	phaseQuestion phase = iota
	// phaseFeedback highlights the answer until the scheduled advance.
	phaseFeedback
	// phaseExhausted offers another pass, a new quiz, or the report.
	phaseExhausted
	// phaseReport shows the scrollable results.
	phaseReport
)

// question holds the display data of the question on screen.
type question struct {
	Number    int
	Formatted content.Formatted
}

// feedback records the last submitted answer for highlighting.
type feedback struct {
	Chosen content.Letter
	Result session.Result
}

// advanceMsg fires when the feedback delay elapses.
// Messages whose seq no longer matches the model are stale and ignored.
type advanceMsg struct {
	seq int
}
