package content

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies how a question file is parsed.
type Format int

const (
	// FormatText is the "number;text" line format.
	FormatText Format = iota
	// FormatDocument is a .docx document with numbered paragraphs.
	FormatDocument
	// FormatWorkbook is an .xlsx workbook with number and body columns.
	FormatWorkbook
)

// String returns a short name for the format.
func (f Format) String() string {
	switch f {
	case FormatDocument:
		return "document"
	case FormatWorkbook:
		return "workbook"
	default:
		return "text"
	}
}

// DetectFormat selects a question format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return FormatDocument
	case ".xlsx":
		return FormatWorkbook
	default:
		return FormatText
	}
}

// FindQuestionSource returns the first candidate that exists.
func FindQuestionSource(candidates []string) (string, error) {
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				continue
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", loadError("question", candidate, err)
		}
	}
	return "", &LoadError{
		Role:   "question",
		Source: strings.Join(candidates, ", "),
		Kind:   ErrSourceNotFound,
	}
}

// LoadQuestions reads and parses a question file in the format implied by its extension.
func LoadQuestions(path string) (Questions, error) {
	var (
		questions Questions
		err       error
	)
	switch DetectFormat(path) {
	case FormatDocument:
		questions, err = loadDocument(path)
	case FormatWorkbook:
		questions, err = loadWorkbook(path)
	default:
		questions, err = loadText(path)
	}
	if err != nil {
		return nil, loadError("question", path, err)
	}
	return questions, nil
}

// loadText reads questions from a "number;text" file.
func loadText(path string) (Questions, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseQuestionText(file)
}
