package content

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineBytes = 1 << 20

// ParseAnswers reads "number|letter" records, one per line.
// Malformed lines are skipped; ErrNoContent is returned when none remain.
func ParseAnswers(r io.Reader) (AnswerKey, error) {
	answers := AnswerKey{}
	scanner := newLineScanner(r)
	for scanner.Scan() {
		number, letter, ok := parseAnswerLine(scanner.Text())
		if !ok {
			continue
		}
		answers[number] = letter
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan answers: %w", err)
	}
	if len(answers) == 0 {
		return nil, ErrNoContent
	}
	return answers, nil
}

// parseAnswerLine parses a single answer record.
func parseAnswerLine(line string) (int, Letter, bool) {
	line = strings.TrimSpace(stripBOM(line))
	if line == "" || !strings.Contains(line, "|") || strings.HasSuffix(line, "|") {
		return 0, "", false
	}
	parts := strings.Split(line, "|")
	if len(parts) != 2 {
		return 0, "", false
	}
	number, ok := parseQuestionNumber(parts[0])
	if !ok {
		return 0, "", false
	}
	letter, ok := NormalizeLetter(parts[1])
	if !ok {
		return 0, "", false
	}
	return number, letter, true
}

// LoadAnswers reads and parses an answer file.
func LoadAnswers(path string) (AnswerKey, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, loadError("answer", path, err)
	}
	defer file.Close()
	answers, err := ParseAnswers(file)
	if err != nil {
		return nil, loadError("answer", path, err)
	}
	return answers, nil
}

// newLineScanner returns a scanner that tolerates long lines.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return scanner
}
