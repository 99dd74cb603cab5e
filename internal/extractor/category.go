package extractor

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCategory is assigned when no subject heading matches.
const DefaultCategory = "General Knowledge"

// categoryVocabulary is the closed set of subject-heading patterns found in
// current-affairs compilations. Headings may spell the conjunction out
// ("Science and Technology") or use an ampersand; both forms match.
var categoryVocabulary = []string{
	`Polity\s*(?:&|and)?\s*Governance`,
	`Economy`,
	`Environment`,
	`Science\s*(?:&|and)?\s*Technology`,
	`International\s*Relations`,
	`Awards?\s*(?:&|and)?\s*Honours?`,
	`Sports`,
	`Art\s*(?:&|and)?\s*Culture`,
	`Current\s*Events?`,
	`Legal\s*(?:Affairs?|Updates?)`,
	`Social\s*Issues?`,
}

// CategoryDetector assigns a subject category to a window of text by
// locating the most recently seen section heading. It is stateless after
// construction and safe for concurrent use.
type CategoryDetector struct {
	patterns []*regexp.Regexp
}

// NewCategoryDetector compiles the category vocabulary.
func NewCategoryDetector() *CategoryDetector {
	patterns := make([]*regexp.Regexp, 0, len(categoryVocabulary))
	for _, pattern := range categoryVocabulary {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+pattern))
	}
	return &CategoryDetector{patterns: patterns}
}

// Detect returns the normalized label of the heading whose match starts
// latest in window, so the heading closest to the question wins. Returns
// DefaultCategory when no heading matches.
func (d *CategoryDetector) Detect(window string) string {
	lastStart := -1
	lastHeading := ""

	for _, pattern := range d.patterns {
		for _, loc := range pattern.FindAllStringIndex(window, -1) {
			if loc[0] > lastStart {
				lastStart = loc[0]
				lastHeading = window[loc[0]:loc[1]]
			}
		}
	}

	if lastStart < 0 {
		return DefaultCategory
	}
	return d.normalize(lastHeading)
}

// normalize rewrites a matched heading into the vocabulary's display form:
// title case, single spaces, "&" for the conjunction.
func (d *CategoryDetector) normalize(heading string) string {
	// cases.Caser carries state, so build one per call to keep Detect safe
	// for concurrent use.
	category := cases.Title(language.English).String(strings.TrimSpace(heading))
	category = strings.ReplaceAll(category, "  ", " ")
	category = strings.ReplaceAll(category, " And ", " & ")
	return category
}
