package content

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	documentPart     = "word/document.xml"
	wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	maxDocumentBytes = 64 << 20
)

// ErrMissingDocumentPart indicates a .docx archive without a main document part.
var ErrMissingDocumentPart = errors.New("missing " + documentPart)

// ParseDocumentParagraphs builds questions from document paragraphs.
// A paragraph starting with a digit opens a new question; following
// paragraphs are space-joined onto it until the next numbered paragraph.
func ParseDocumentParagraphs(paragraphs []string) (Questions, error) {
	questions := Questions{}
	var (
		open   bool
		number int
		body   strings.Builder
	)
	flush := func() {
		if !open {
			return
		}
		if text := NormalizeBody(body.String()); text != "" {
			questions[number] = text
		}
		open = false
		body.Reset()
	}

	for _, paragraph := range paragraphs {
		text := strings.TrimSpace(paragraph)
		if text == "" {
			continue
		}
		if text[0] >= '0' && text[0] <= '9' {
			flush()
			n, rest, ok := splitNumberedParagraph(text)
			if !ok {
				continue
			}
			open = true
			number = n
			body.WriteString(rest)
			continue
		}
		if !open {
			continue
		}
		if body.Len() > 0 {
			body.WriteByte(' ')
		}
		body.WriteString(text)
	}
	flush()

	if len(questions) == 0 {
		return nil, ErrNoContent
	}
	return questions, nil
}

// splitNumberedParagraph separates the leading digit run from the body and
// drops a single ")" or "." marker that follows it.
func splitNumberedParagraph(text string) (int, string, bool) {
	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	number, err := strconv.Atoi(text[:end])
	if err != nil || number <= 0 {
		return 0, "", false
	}
	rest := strings.TrimSpace(text[end:])
	if strings.HasPrefix(rest, ")") || strings.HasPrefix(rest, ".") {
		rest = strings.TrimSpace(rest[1:])
	}
	return number, rest, true
}

// ReadDocxParagraphs returns the paragraph texts of a .docx file in order.
func ReadDocxParagraphs(path string) ([]string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != documentPart {
			continue
		}
		reader, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", documentPart, err)
		}
		defer reader.Close()
		return parseDocumentXML(io.LimitReader(reader, maxDocumentBytes))
	}
	return nil, ErrMissingDocumentPart
}

// parseDocumentXML collects w:p paragraphs from WordprocessingML.
// Paragraphs nested inside another paragraph (text boxes) are folded into it,
// separated by a space.
func parseDocumentXML(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)
	var (
		paragraphs []string
		current    strings.Builder
		depth      int
		inText     bool
	)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", documentPart, err)
		}
		switch typed := token.(type) {
		case xml.StartElement:
			if typed.Name.Space != wordprocessingNS {
				continue
			}
			switch typed.Name.Local {
			case "p":
				if depth == 0 {
					current.Reset()
				} else if current.Len() > 0 {
					current.WriteByte(' ')
				}
				depth++
			case "t":
				inText = true
			case "tab", "br":
				if depth > 0 {
					current.WriteByte(' ')
				}
			}
		case xml.EndElement:
			if typed.Name.Space != wordprocessingNS {
				continue
			}
			switch typed.Name.Local {
			case "p":
				if depth == 0 {
					continue
				}
				depth--
				if depth == 0 {
					paragraphs = append(paragraphs, current.String())
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if depth > 0 && inText {
				current.Write(typed)
			}
		}
	}
	return paragraphs, nil
}

// loadDocument reads questions from a .docx file.
func loadDocument(path string) (Questions, error) {
	paragraphs, err := ReadDocxParagraphs(path)
	if err != nil {
		return nil, err
	}
	return ParseDocumentParagraphs(paragraphs)
}
