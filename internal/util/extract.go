package util

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ErrorPlaceholderPrefix marks text blobs produced for unreadable
// documents. Downstream extraction checks for it instead of receiving an
// error, so the record still enters the library and stays deletable.
const ErrorPlaceholderPrefix = "Error processing PDF"

// ExtractPDFText pulls the text layer out of a PDF page by page.
func ExtractPDFText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var full strings.Builder
	var lastErr error

	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if len(pageText) > 0 {
			full.WriteString(pageText)
			full.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(full.String())
	if len(result) == 0 {
		if lastErr != nil {
			return "", lastErr
		}
		return "", fmt.Errorf("no text extracted from PDF (scanned image or empty document)")
	}
	return result, nil
}

// ErrorPlaceholder builds the well-known placeholder blob for a document
// that could not be read.
func ErrorPlaceholder(filename string, err error) string {
	return fmt.Sprintf("%s: %s\n\nThe file could not be processed (%v). This might be a corrupted, password-protected or image-only PDF.",
		ErrorPlaceholderPrefix, filename, err)
}
