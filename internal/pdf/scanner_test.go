package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractDateFromFilename(t *testing.T) {
	s := NewScanner()

	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"iso date", "current_affairs_2025-12-19.pdf", "2025-12-19"},
		{"named month", "current_affairs_2025_december_19.pdf", "2025-12-19"},
		{"named month single digit day", "weekly_2026_march_5.pdf", "2026-03-05"},
		{"unknown month falls back", "weekly_2026_midyear_5.pdf", "2026-01-05"},
		{"no date", "compilation.pdf", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ExtractDateFromFilename(tt.filename); got != tt.want {
				t.Errorf("ExtractDateFromFilename(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestScanFolder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"monthly_2026-01-15.pdf",
		"monthly_2026-02-15.pdf",
		"monthly_2026-01-15_tracked.pdf",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := NewScanner().ScanFolder(dir)
	if err != nil {
		t.Fatalf("ScanFolder() error: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("ScanFolder() returned %d files, want 2", len(files))
	}

	// Newest publication date first
	if files[0].Name != "monthly_2026-02-15.pdf" {
		t.Errorf("files[0].Name = %q, want the newer file first", files[0].Name)
	}
	if files[0].SourceDate != "2026-02-15" {
		t.Errorf("files[0].SourceDate = %q, want %q", files[0].SourceDate, "2026-02-15")
	}
	if files[1].SourceDate != "2026-01-15" {
		t.Errorf("files[1].SourceDate = %q, want %q", files[1].SourceDate, "2026-01-15")
	}
}

func TestScanFolderMissing(t *testing.T) {
	if _, err := NewScanner().ScanFolder("/definitely/not/a/real/path"); err == nil {
		t.Error("ScanFolder() on a missing folder should fail")
	}
}
