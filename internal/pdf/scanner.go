package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// FileInfo describes one source PDF found during a folder scan.
type FileInfo struct {
	Path       string
	Name       string
	SourceDate string // YYYY-MM-DD recovered from the filename, or ""
	SizeKB     float64
	ModTime    time.Time
}

// Scanner enumerates source PDFs in a watched folder.
type Scanner struct {
	isoDate   *regexp.Regexp
	namedDate *regexp.Regexp
}

// NewScanner creates a folder scanner.
func NewScanner() *Scanner {
	return &Scanner{
		isoDate:   regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`),
		namedDate: regexp.MustCompile(`(\d{4})_(\w+)_(\d{1,2})`),
	}
}

var monthNumbers = map[string]string{
	"january": "01", "february": "02", "march": "03", "april": "04",
	"may": "05", "june": "06", "july": "07", "august": "08",
	"september": "09", "october": "10", "november": "11", "december": "12",
}

// ScanFolder returns the PDFs in dir, newest publication date first. Files
// with a "_tracked" suffix are working copies and are skipped.
func (s *Scanner) ScanFolder(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read folder %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
			continue
		}
		if strings.Contains(name, "_tracked") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:       filepath.Join(dir, name),
			Name:       name,
			SourceDate: s.ExtractDateFromFilename(name),
			SizeKB:     float64(info.Size()) / 1024,
			ModTime:    info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].SourceDate != files[j].SourceDate {
			return files[i].SourceDate > files[j].SourceDate
		}
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// ExtractDateFromFilename recovers a publication date from names like
// "current_affairs_2025-12-19.pdf" or "current_affairs_2025_december_19.pdf".
// Returns "" when no date is present.
func (s *Scanner) ExtractDateFromFilename(name string) string {
	if m := s.isoDate.FindStringSubmatch(name); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
	}

	if m := s.namedDate.FindStringSubmatch(name); m != nil {
		month, ok := monthNumbers[strings.ToLower(m[2])]
		if !ok {
			month = "01"
		}
		day := m[3]
		if len(day) == 1 {
			day = "0" + day
		}
		return fmt.Sprintf("%s-%s-%s", m[1], month, day)
	}

	return ""
}
