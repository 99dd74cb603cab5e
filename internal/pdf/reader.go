// Package pdf supplies document text and file management for the question
// extraction pipeline: plain-text extraction, source folder scanning, and
// page-range chunking of oversized files.
package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader extracts plain text from PDF files.
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a new PDF reader with the specified size limit.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// ExtractText returns the concatenated per-page text of the PDF at path,
// pages joined with newlines. Pages that fail to decode are skipped so one
// bad page does not lose the document.
func (r *Reader) ExtractText(path string) (string, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return "", fmt.Errorf("cannot access file: %w", err)
	}

	if err := r.validatePDFFile(path, fileInfo); err != nil {
		return "", err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails
			continue
		}

		if builder.Len()+len(content) > r.maxTextSize {
			remaining := r.maxTextSize - builder.Len()
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// validatePDFFile performs basic validation on a PDF file.
func (r *Reader) validatePDFFile(path string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}

	if fileInfo.Size() > r.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	return nil
}
