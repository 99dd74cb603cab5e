package extractor

import "regexp"

// inlineLookback is how far before an inline match the category heading is
// searched for. Inline documents interleave prose with questions, so the
// window is wider than the section lookback.
const inlineLookback = 5000

// InlineFallbackParser scans a whole document for self-contained
// "question + four parenthesized choices" patterns. It is used only when no
// practice-questions sections exist; there is no answer key to consult in
// this mode, so every record keeps the default answer index.
type InlineFallbackParser struct {
	pattern    *regexp.Regexp
	categories *CategoryDetector
	choices    *ChoiceExtractor
}

// NewInlineFallbackParser creates a parser using the given category detector
// and choice cleanup.
func NewInlineFallbackParser(categories *CategoryDetector, choices *ChoiceExtractor) *InlineFallbackParser {
	return &InlineFallbackParser{
		// A capitalized sentence ending in "?" followed directly by four
		// lowercase parenthesized choices with no other markers between.
		pattern: regexp.MustCompile(
			`([A-Z][^?]*\?)\s*` +
				`\(a\)\s*([^(]+)` +
				`\(b\)\s*([^(]+)` +
				`\(c\)\s*([^(]+)` +
				`\(d\)\s*([^(\n]+)`),
		categories: categories,
		choices:    choices,
	}
}

// Parse returns one record per accepted match, numbered by the 1-based
// ordinal of the match within the scan. Matches with a question shorter than
// the acceptance threshold or with any empty choice are dropped.
func (p *InlineFallbackParser) Parse(text string) []QuestionRecord {
	var records []QuestionRecord

	for i, m := range p.pattern.FindAllStringSubmatchIndex(text, -1) {
		question := p.choices.normalize(text[m[2]:m[3]])
		if len(question) < minQuestionLength {
			continue
		}

		choices := make([]string, 0, choiceCount)
		for group := 2; group <= 5; group++ {
			choices = append(choices, p.choices.cleanChoice(text[m[2*group]:m[2*group+1]]))
		}
		if nonEmptyChoices(choices) < choiceCount {
			continue
		}

		lookback := m[0] - inlineLookback
		if lookback < 0 {
			lookback = 0
		}

		records = append(records, QuestionRecord{
			QuestionText:   question,
			Choices:        choices,
			CorrectIndex:   0,
			Category:       p.categories.Detect(text[lookback:m[0]]),
			QuestionNumber: i + 1,
		})
	}

	return records
}
