// Package pdftext extracts plain text from PDF files. It is the
// text-producing collaborator of the extract package: pages in, one
// newline-joined string out.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extract reads every page of the PDF at path and returns the
// concatenated text, pages joined by newlines. A page whose text
// cannot be decoded contributes an empty string; only failing to
// open or read the document itself is an error.
func Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			// Undecodable page, keep going with the rest.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
