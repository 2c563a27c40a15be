package content

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Option is one inline answer choice extracted from a question body.
type Option struct {
	Letter Letter
	Text   string
}

// Formatted is a question body split for display.
type Formatted struct {
	Stem    string
	Options []Option
}

// FormatBody splits inline "A) ... B) ..." markers out of a question body.
// Bodies without exactly one "A)" marker are returned unchanged as the stem.
func FormatBody(body string) Formatted {
	text := strings.TrimSpace(body)
	text = strings.TrimSpace(strings.TrimPrefix(text, "."))

	markers := optionMarkers(text)
	first := -1
	count := 0
	for _, index := range markers {
		if text[index] == 'A' {
			count++
			if first == -1 {
				first = index
			}
		}
	}
	if count != 1 {
		return Formatted{Stem: text}
	}

	formatted := Formatted{Stem: strings.TrimSpace(text[:first])}
	var starts []int
	for _, index := range markers {
		if index >= first {
			starts = append(starts, index)
		}
	}
	for i, start := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		formatted.Options = append(formatted.Options, Option{
			Letter: Letter(text[start : start+1]),
			Text:   strings.TrimSpace(text[start+2 : end]),
		})
	}
	return formatted
}

// optionMarkers returns byte offsets of "X)" markers for X in A..E that are
// not glued to a preceding word or opening parenthesis.
func optionMarkers(text string) []int {
	var markers []int
	for i := 0; i+1 < len(text); i++ {
		if text[i] < 'A' || text[i] > 'E' || text[i+1] != ')' {
			continue
		}
		if i > 0 {
			prev, _ := utf8.DecodeLastRuneInString(text[:i])
			if prev == '(' || unicode.IsLetter(prev) || unicode.IsDigit(prev) {
				continue
			}
		}
		markers = append(markers, i)
	}
	return markers
}
