package content

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ParseWorkbookRows builds questions from spreadsheet rows: the first cell
// holds the number and the second the body. Header and malformed rows are skipped.
func ParseWorkbookRows(rows [][]string) (Questions, error) {
	questions := Questions{}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		number, ok := parseQuestionNumber(row[0])
		if !ok {
			continue
		}
		body := NormalizeBody(row[1])
		if body == "" {
			continue
		}
		questions[number] = body
	}
	if len(questions) == 0 {
		return nil, ErrNoContent
	}
	return questions, nil
}

// loadWorkbook reads questions from the first sheet of an .xlsx file.
func loadWorkbook(path string) (Questions, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoContent
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return ParseWorkbookRows(rows)
}
