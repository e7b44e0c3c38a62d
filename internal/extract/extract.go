// Package extract converts resume files into the plain text the analysis
// pipeline consumes. Plain text, PDF, and DOCX are supported; everything
// else is rejected at the boundary.
package extract

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resumelens/internal/errors"
)

// Text extracts plain text from data, dispatching on the file extension.
// Unknown extensions are treated as plain text when the content looks
// textual, otherwise rejected.
func Text(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".txt", ".md", ".text":
		return string(data), nil
	default:
		if looksBinary(data) {
			return "", errors.NewValidationError(errors.ErrCodeInvalidFormat,
				"unsupported resume file type (expected .txt, .md, .pdf, or .docx)", nil).
				WithContext("filename", filename)
		}
		return string(data), nil
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeExtractionFailed, "failed to read pdf", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeExtractionFailed, "failed to parse docx", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// looksBinary reports whether data contains bytes that plain resume text
// never carries.
func looksBinary(data []byte) bool {
	limit := min(len(data), 512)
	for _, b := range data[:limit] {
		if b == 0 {
			return true
		}
	}
	return false
}
