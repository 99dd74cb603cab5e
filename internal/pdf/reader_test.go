package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractTextMissingFile(t *testing.T) {
	r := NewReader(1024 * 1024)

	if _, err := r.ExtractText(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("ExtractText() on a missing file should fail")
	}
}

func TestExtractTextRejectsNonPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewReader(1024 * 1024)
	_, err := r.ExtractText(path)
	if err == nil || !strings.Contains(err.Error(), "not a PDF") {
		t.Errorf("ExtractText() error = %v, want a not-a-PDF error", err)
	}
}

func TestExtractTextRejectsDirectory(t *testing.T) {
	r := NewReader(1024 * 1024)

	if _, err := r.ExtractText(t.TempDir()); err == nil {
		t.Error("ExtractText() on a directory should fail")
	}
}

func TestExtractTextRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.pdf")
	if err := os.WriteFile(path, make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewReader(1024)
	_, err := r.ExtractText(path)
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Errorf("ExtractText() error = %v, want a file-size error", err)
	}
}

func TestExtractTextCorruptPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrupt.pdf")
	if err := os.WriteFile(path, []byte("not really a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewReader(1024 * 1024)
	if _, err := r.ExtractText(path); err == nil {
		t.Error("ExtractText() on a corrupt file should fail")
	}
}
