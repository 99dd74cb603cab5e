// Package extractor turns unstructured exam-preparation text into structured
// multiple-choice question records. Documents come in two incompatible
// layouts: explicit practice-questions sections with a trailing answer key,
// and free-flowing prose with self-contained inline questions. The engine
// parses with layered, fallback-driven pattern matching and optimizes for
// precision: ambiguous candidates are dropped rather than guessed at.
package extractor

// Engine orchestrates the extraction pipeline. It holds only compiled
// patterns, keeps no state between invocations, and is safe for concurrent
// use across documents.
type Engine struct {
	sections   *SectionSegmenter
	structured *StructuredQuestionParser
	inline     *InlineFallbackParser
	answers    *AnswerKeyResolver
}

// NewEngine creates an extraction engine with the default category
// vocabulary and marker conventions.
func NewEngine() *Engine {
	categories := NewCategoryDetector()
	choices := NewChoiceExtractor()
	return &Engine{
		sections:   NewSectionSegmenter(categories),
		structured: NewStructuredQuestionParser(choices),
		inline:     NewInlineFallbackParser(categories, choices),
		answers:    NewAnswerKeyResolver(),
	}
}

// Extract returns the question records found in text. When the document has
// at least one practice-questions section, every section is parsed on the
// structured path with a single document-wide answer key; otherwise the
// whole document is scanned on the inline path. The two paths are never
// merged: a document missing its section headers is delegated entirely to
// the inline scan. Empty input yields an empty, non-nil list.
func (e *Engine) Extract(text string) []QuestionRecord {
	records := []QuestionRecord{}
	if text == "" {
		return records
	}

	sections := e.sections.Segment(text)
	if len(sections) == 0 {
		return append(records, e.inline.Parse(text)...)
	}

	key := e.answers.Resolve(text)
	for _, section := range sections {
		records = append(records, e.structured.Parse(section, key)...)
	}
	return records
}
