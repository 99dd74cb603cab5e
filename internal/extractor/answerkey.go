package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// AnswerKeyResolver locates an answer key block in a document and parses it
// into a question-number to answer-index mapping.
type AnswerKeyResolver struct {
	header   *regexp.Regexp
	blockEnd *regexp.Regexp
	entry    *regexp.Regexp
}

// NewAnswerKeyResolver compiles the answer key patterns.
func NewAnswerKeyResolver() *AnswerKeyResolver {
	return &AnswerKeyResolver{
		// Header line, through its trailing newline.
		header: regexp.MustCompile(`(?i)ANSWER\s*KEY[^\n]*\n`),
		// A blank line followed by a capitalized line ends the block.
		blockEnd: regexp.MustCompile(`\n\s*\n\s*[A-Z]`),
		// Entries come as "1. (d)", "2-a" or "3) b".
		entry: regexp.MustCompile(`(?i)(\d+)\s*[.\-)]\s*\(?([a-d])\)?`),
	}
}

// Resolve returns a map from 1-based question number to 0-3 answer index for
// the first answer key block in text. The map is empty when no block is
// found; absent question numbers are simply not present.
func (r *AnswerKeyResolver) Resolve(text string) map[int]int {
	answers := make(map[int]int)

	loc := r.header.FindStringIndex(text)
	if loc == nil {
		return answers
	}

	body := text[loc[1]:]
	if end := r.blockEnd.FindStringIndex(body); end != nil {
		body = body[:end[0]]
	}

	for _, m := range r.entry.FindAllStringSubmatch(body, -1) {
		number, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		letter := strings.ToLower(m[2])
		answers[number] = int(letter[0] - 'a')
	}

	return answers
}
