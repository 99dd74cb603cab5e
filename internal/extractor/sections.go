package extractor

import "regexp"

const (
	// sectionLookback is how far before a section header the category
	// heading is searched for.
	sectionLookback = 2000

	// answerKeyPad extends a trailing section past its answer key header so
	// the full key is included in the section text.
	answerKeyPad = 500
)

// Section is one practice-questions region with its inferred category.
type Section struct {
	Text     string
	Category string
}

// SectionSegmenter locates explicit practice-questions sections and delimits
// each one at the next sibling header, the end of a trailing answer key, or
// the end of the document.
type SectionSegmenter struct {
	header     *regexp.Regexp
	answerKey  *regexp.Regexp
	categories *CategoryDetector
}

// NewSectionSegmenter creates a segmenter using the given category detector.
func NewSectionSegmenter(categories *CategoryDetector) *SectionSegmenter {
	return &SectionSegmenter{
		header:     regexp.MustCompile(`(?i)PRACTICE\s*QUESTIONS?`),
		answerKey:  regexp.MustCompile(`(?i)ANSWER\s*KEY`),
		categories: categories,
	}
}

// Segment returns one Section per practice-questions header in text, in
// document order. The list is empty when the document has no such headers.
func (s *SectionSegmenter) Segment(text string) []Section {
	headers := s.header.FindAllStringIndex(text, -1)
	sections := make([]Section, 0, len(headers))

	for i, header := range headers {
		start := header[0]

		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		} else if key := s.answerKey.FindStringIndex(text[start:]); key != nil {
			end = start + key[1] + answerKeyPad
			if end > len(text) {
				end = len(text)
			}
		}

		lookback := start - sectionLookback
		if lookback < 0 {
			lookback = 0
		}

		sections = append(sections, Section{
			Text:     text[start:end],
			Category: s.categories.Detect(text[lookback:start]),
		})
	}

	return sections
}
