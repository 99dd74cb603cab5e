package extractor

import (
	"regexp"
	"strconv"
)

// StructuredQuestionParser parses the numbered question blocks of one
// practice-questions section and resolves answers against a document-wide
// answer key mapping.
type StructuredQuestionParser struct {
	choices  *ChoiceExtractor
	marker   *regexp.Regexp
	boundary *regexp.Regexp
}

// NewStructuredQuestionParser creates a parser using the given choice
// extractor.
func NewStructuredQuestionParser(choices *ChoiceExtractor) *StructuredQuestionParser {
	return &StructuredQuestionParser{
		choices: choices,
		marker:  regexp.MustCompile(`(\d+)\.\s*`),
		// A block runs to the next numbered question on its own line, an
		// ANSWER header, or the end of the section.
		boundary: regexp.MustCompile(`\n\s*(?:\d+\.|ANSWER)`),
	}
}

// Parse returns the accepted question records of section. A block is kept
// when at least two choices were recovered and its normalized question text
// is non-empty. Answers are resolved by the block's 1-based position among
// the accepted blocks, not its printed number; unresolved entries keep the
// default index 0.
func (p *StructuredQuestionParser) Parse(section Section, key map[int]int) []QuestionRecord {
	var records []QuestionRecord

	pos := 0
	for pos < len(section.Text) {
		marker := p.marker.FindStringSubmatchIndex(section.Text[pos:])
		if marker == nil {
			break
		}

		number, err := strconv.Atoi(section.Text[pos+marker[2] : pos+marker[3]])
		if err != nil {
			// Absurdly long digit runs overflow; skip past the marker.
			pos += marker[1]
			continue
		}

		start := pos + marker[1]
		end := len(section.Text)
		if boundary := p.boundary.FindStringIndex(section.Text[start:]); boundary != nil {
			end = start + boundary[0]
		}
		block := section.Text[start:end]
		pos = end

		choices, question := p.choices.Extract(block)
		if nonEmptyChoices(choices) < minStructuredChoices {
			continue
		}
		if question == "" {
			continue
		}

		records = append(records, QuestionRecord{
			QuestionText:   question,
			Choices:        choices,
			CorrectIndex:   0,
			Category:       section.Category,
			QuestionNumber: number,
		})
	}

	for i := range records {
		if index, ok := key[i+1]; ok {
			records[i].CorrectIndex = index
		}
	}

	return records
}
