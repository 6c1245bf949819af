package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DocumentExtractor extracts plain text from uploaded PDF documents
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractText pulls the text of every page, in page order, joined by
// newlines and stripped of surrounding whitespace. A page with no
// extractable text contributes an empty string; only a stream that cannot
// be opened as a PDF at all is an error.
func (e *DocumentExtractor) ExtractText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs instead of
	// returning an error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		pages = append(pages, pageText(reader.Page(i)))
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

// pageText extracts one page's text. An unreadable page is not an
// unreadable document: any failure here yields an empty string.
func pageText(page pdf.Page) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	if page.V.IsNull() {
		return ""
	}
	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(content)
}
