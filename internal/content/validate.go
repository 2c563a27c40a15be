package content

import (
	"fmt"
	"strings"
)

// MismatchError reports question and answer tables whose keys disagree.
type MismatchError struct {
	MissingAnswers   []int
	MissingQuestions []int
}

// Error returns a readable summary of the mismatched numbers.
func (e *MismatchError) Error() string {
	var parts []string
	if len(e.MissingAnswers) > 0 {
		parts = append(parts, "questions without answers "+formatNumbers(e.MissingAnswers))
	}
	if len(e.MissingQuestions) > 0 {
		parts = append(parts, "answers without questions "+formatNumbers(e.MissingQuestions))
	}
	return "content mismatch: " + strings.Join(parts, "; ")
}

// CheckConsistency verifies both tables are non-empty and share the same keys.
func CheckConsistency(questions Questions, answers AnswerKey) error {
	if len(questions) == 0 || len(answers) == 0 {
		return ErrNoContent
	}
	mismatch := &MismatchError{}
	for _, number := range questions.Numbers() {
		if _, ok := answers[number]; !ok {
			mismatch.MissingAnswers = append(mismatch.MissingAnswers, number)
		}
	}
	for _, number := range answers.Numbers() {
		if _, ok := questions[number]; !ok {
			mismatch.MissingQuestions = append(mismatch.MissingQuestions, number)
		}
	}
	if len(mismatch.MissingAnswers) == 0 && len(mismatch.MissingQuestions) == 0 {
		return nil
	}
	return mismatch
}

// formatNumbers renders up to ten numbers followed by a count of the rest.
func formatNumbers(numbers []int) string {
	const limit = 10
	shown := numbers
	if len(shown) > limit {
		shown = shown[:limit]
	}
	parts := make([]string, 0, len(shown))
	for _, number := range shown {
		parts = append(parts, fmt.Sprint(number))
	}
	text := strings.Join(parts, ", ")
	if extra := len(numbers) - len(shown); extra > 0 {
		text += fmt.Sprintf(" and %d more", extra)
	}
	return "[" + text + "]"
}
