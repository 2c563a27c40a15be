package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizdesk/internal/content"
	"quizdesk/internal/report"
	"quizdesk/internal/session"
)

// Colors used for feedback and chrome.
var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("242")
	colorSuccess = lipgloss.Color("42")
	colorFailure = lipgloss.Color("196")
	colorNotice  = lipgloss.Color("220")
)

// renderTitle renders a bold heading.
func renderTitle(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(colorTitle).Render(text)
}

// renderHeader renders the session and question line.
func renderHeader(sessionID string, number int, stats session.Stats, noColor bool) string {
	line := "Quiz " + shortID(sessionID)
	if number > 0 {
		line += fmt.Sprintf(" | Question %d", number)
	}
	line += fmt.Sprintf(" | %d of %d left", stats.Remaining, stats.Total)
	return renderTitle(line, noColor)
}

// renderQuestion renders the stem with one option per line.
func renderQuestion(formatted content.Formatted, width int) string {
	var b strings.Builder
	b.WriteString(formatted.Stem)
	for _, option := range formatted.Options {
		fmt.Fprintf(&b, "\n%s) %s", option.Letter, option.Text)
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(b.String())
}

// renderButtons renders one button per answer letter, highlighted during feedback.
func renderButtons(showFeedback bool, fb feedback, noColor bool) string {
	buttons := make([]string, 0, len(content.Letters))
	for _, letter := range content.Letters {
		buttons = append(buttons, renderButton(letter, buttonStateFor(letter, showFeedback, fb), noColor))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// buttonState is the feedback highlight of a single button.
type buttonState int

const (
	buttonIdle buttonState = iota
	buttonSuccess
	buttonFailure
)

// buttonStateFor decides the highlight for letter from the last result.
func buttonStateFor(letter content.Letter, showFeedback bool, fb feedback) buttonState {
	if !showFeedback {
		return buttonIdle
	}
	if letter == fb.Result.Expected {
		return buttonSuccess
	}
	if letter == fb.Chosen && !fb.Result.Correct {
		return buttonFailure
	}
	return buttonIdle
}

// renderButton renders a bordered letter button.
func renderButton(letter content.Letter, state buttonState, noColor bool) string {
	label := " " + string(letter) + " "
	if noColor {
		switch state {
		case buttonSuccess:
			label = "+" + string(letter) + "+"
		case buttonFailure:
			label = "x" + string(letter) + "x"
		}
		return "[" + label + "] "
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		MarginRight(1).
		Bold(true)
	switch state {
	case buttonSuccess:
		style = style.Background(colorSuccess).Foreground(lipgloss.Color("231")).BorderForeground(colorSuccess)
	case buttonFailure:
		style = style.Background(colorFailure).Foreground(lipgloss.Color("231")).BorderForeground(colorFailure)
	}
	return style.Render(label)
}

// renderFeedbackLine summarizes the last answer during feedback.
func renderFeedbackLine(showFeedback bool, fb feedback, noColor bool) string {
	if !showFeedback {
		return ""
	}
	if fb.Result.Correct {
		return stylize("Correct!", noColor, colorSuccess)
	}
	return stylize(fmt.Sprintf("Wrong: the correct answer is %s", fb.Result.Expected), noColor, colorFailure)
}

// renderStats renders the running score line.
func renderStats(stats session.Stats, noColor bool) string {
	return stylize(report.StatsLine(stats), noColor, colorMuted)
}

// renderExhausted renders the end-of-pool prompt.
func renderExhausted(stats session.Stats) string {
	return fmt.Sprintf("All %d questions have been asked.\nStart another pass, begin a new quiz, or finish to see the results.", stats.Total)
}

// renderNotice renders a transient notice.
func renderNotice(notice string, noColor bool) string {
	if notice == "" {
		return ""
	}
	return stylize(notice, noColor, colorNotice)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// shortID trims a session id for the header.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
