package content

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseQuestionText reads "number;text" records, one per line.
// Only the first ';' separates the number from the body. A record with an
// empty body is kept so its answer key entry still has a question.
func ParseQuestionText(r io.Reader) (Questions, error) {
	questions := Questions{}
	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(stripBOM(scanner.Text()))
		if line == "" {
			continue
		}
		rawNumber, body, found := strings.Cut(line, ";")
		if !found {
			continue
		}
		number, ok := parseQuestionNumber(rawNumber)
		if !ok {
			continue
		}
		questions[number] = NormalizeBody(body)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoContent
	}
	return questions, nil
}

// parseQuestionNumber parses a positive decimal question number.
func parseQuestionNumber(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if !isDigits(raw) {
		return 0, false
	}
	number, err := strconv.Atoi(raw)
	if err != nil || number <= 0 {
		return 0, false
	}
	return number, true
}
