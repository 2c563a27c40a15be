package testutil

import (
	"archive/zip"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WriteFile writes body to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// WriteLines writes one record per line to dir/name and returns the path.
func WriteLines(t testing.TB, dir, name string, lines ...string) string {
	t.Helper()
	return WriteFile(t, dir, name, strings.Join(lines, "\n")+"\n")
}

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

// WriteDocx writes a minimal .docx with one paragraph per entry and returns the path.
func WriteDocx(t testing.TB, dir, name string, paragraphs ...string) string {
	t.Helper()
	var body strings.Builder
	for _, paragraph := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		_ = xml.EscapeText(&body, []byte(paragraph))
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	return WriteDocxBody(t, dir, name, body.String())
}

// WriteDocxBody writes a .docx whose w:body holds the given WordprocessingML
// and returns the path. The w prefix is bound to the main namespace.
func WriteDocxBody(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer file.Close()

	archive := zip.NewWriter(file)
	writePart(t, archive, "[Content_Types].xml", contentTypes)
	writePart(t, archive, "word/document.xml", DocumentXML(body))
	if err := archive.Close(); err != nil {
		t.Fatalf("close %s: %v", name, err)
	}
	return path
}

// DocumentXML wraps body in a WordprocessingML document element.
func DocumentXML(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body +
		`</w:body></w:document>`
}

func writePart(t testing.TB, archive *zip.Writer, name, body string) {
	t.Helper()
	part, err := archive.Create(name)
	if err != nil {
		t.Fatalf("create part %s: %v", name, err)
	}
	if _, err := part.Write([]byte(body)); err != nil {
		t.Fatalf("write part %s: %v", name, err)
	}
}

// WriteWorkbook writes rows to the first sheet of a new .xlsx and returns the path.
func WriteWorkbook(t testing.TB, dir, name string, rows [][]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	book := excelize.NewFile()
	defer book.Close()
	sheet := book.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := book.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}
	if err := book.SaveAs(path); err != nil {
		t.Fatalf("save %s: %v", name, err)
	}
	return path
}
