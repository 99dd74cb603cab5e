package extractor

import (
	"regexp"
	"strings"
)

// choiceConvention is one choice-marker style. Conventions are tried in
// priority order and the first one that matches anywhere in a block wins.
type choiceConvention struct {
	name   string
	marker *regexp.Regexp
}

// ChoiceExtractor recovers up to four answer choices from a question block.
// Markers are located with single-marker patterns and the choice text is the
// span between consecutive markers, which keeps matching linear in the block
// size regardless of input shape.
type ChoiceExtractor struct {
	conventions  []choiceConvention
	nextQuestion *regexp.Regexp
	whitespace   *regexp.Regexp
}

// NewChoiceExtractor compiles the marker conventions in priority order.
func NewChoiceExtractor() *ChoiceExtractor {
	return &ChoiceExtractor{
		conventions: []choiceConvention{
			{name: "parenthesized", marker: regexp.MustCompile(`(?i)\(([a-d])\)`)},
			{name: "close_paren", marker: regexp.MustCompile(`(?im)(?:^|\s)([a-d])\)`)},
			{name: "period", marker: regexp.MustCompile(`(?im)(?:^|\s)([a-d])\.`)},
		},
		nextQuestion: regexp.MustCompile(`(?s)\n\d+\..*$`),
		whitespace:   regexp.MustCompile(`\s+`),
	}
}

// Extract returns the choices found in block, always padded or truncated to
// four entries, and the question text preceding the first marker. When no
// convention matches, all four choices are empty and the whole block is
// returned as question text.
func (e *ChoiceExtractor) Extract(block string) ([]string, string) {
	for _, convention := range e.conventions {
		markers := convention.marker.FindAllStringSubmatchIndex(block, -1)
		if len(markers) == 0 {
			continue
		}
		return e.sliceChoices(block, markers), e.normalize(block[:markers[0][0]])
	}
	return make([]string, choiceCount), e.normalize(block)
}

// sliceChoices extracts the text between consecutive markers as choices.
func (e *ChoiceExtractor) sliceChoices(block string, markers [][]int) []string {
	choices := make([]string, 0, choiceCount)
	for i, marker := range markers {
		if i == choiceCount {
			break
		}
		start := marker[1]
		end := len(block)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		choices = append(choices, e.cleanChoice(block[start:end]))
	}
	for len(choices) < choiceCount {
		choices = append(choices, "")
	}
	return choices
}

// cleanChoice strips text leaking in from an adjoining numbered question and
// collapses whitespace.
func (e *ChoiceExtractor) cleanChoice(choice string) string {
	choice = e.nextQuestion.ReplaceAllString(choice, "")
	return e.normalize(choice)
}

func (e *ChoiceExtractor) normalize(text string) string {
	return strings.TrimSpace(e.whitespace.ReplaceAllString(text, " "))
}
