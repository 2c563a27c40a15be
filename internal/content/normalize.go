package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// NormalizeLetter folds an answer token to an upper-case ASCII letter.
// Full-width forms such as "ｂ" are accepted.
func NormalizeLetter(value string) (Letter, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	narrow := width.Narrow.String(trimmed)
	letter := Letter(cases.Upper(language.Und).String(narrow))
	if !letter.Valid() {
		return "", false
	}
	return letter, true
}

// NormalizeBody trims a question body and puts it in NFC form.
func NormalizeBody(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}

// isDigits reports whether value is a non-empty run of ASCII digits.
func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// stripBOM removes a leading UTF-8 byte order mark.
func stripBOM(line string) string {
	return strings.TrimPrefix(line, "\ufeff")
}
