package extractor

import (
	"reflect"
	"strings"
	"testing"
)

func newTestInlineParser() *InlineFallbackParser {
	return NewInlineFallbackParser(NewCategoryDetector(), NewChoiceExtractor())
}

func TestInlineParseSelfContainedQuestion(t *testing.T) {
	p := newTestInlineParser()

	text := "Who won the award this year? (a) Alice (b) Bob (c) Carol (d) Dave"
	records := p.Parse(text)

	if len(records) != 1 {
		t.Fatalf("Parse() returned %d records, want 1", len(records))
	}
	r := records[0]
	if !strings.HasSuffix(r.QuestionText, "award this year?") {
		t.Errorf("QuestionText = %q", r.QuestionText)
	}
	want := []string{"Alice", "Bob", "Carol", "Dave"}
	if !reflect.DeepEqual(r.Choices, want) {
		t.Errorf("Choices = %v, want %v", r.Choices, want)
	}
	if r.CorrectIndex != 0 {
		t.Errorf("CorrectIndex = %d, want 0 (no answer key on this path)", r.CorrectIndex)
	}
	if r.QuestionNumber != 1 {
		t.Errorf("QuestionNumber = %d, want 1", r.QuestionNumber)
	}
	if r.Category != DefaultCategory {
		t.Errorf("Category = %q, want %q", r.Category, DefaultCategory)
	}
}

func TestInlineParseCategoryFromContext(t *testing.T) {
	p := newTestInlineParser()

	text := "Sports\nHow did the last season end overall?\nWhich team lifted the trophy? (a) Reds (b) Blues (c) Greens (d) Whites"
	records := p.Parse(text)

	if len(records) != 1 {
		t.Fatalf("Parse() returned %d records, want 1", len(records))
	}
	if records[0].Category != "Sports" {
		t.Errorf("Category = %q, want %q", records[0].Category, "Sports")
	}
}

func TestInlineParseRejectsShortQuestions(t *testing.T) {
	p := newTestInlineParser()

	records := p.Parse("Who won? (a) Alice (b) Bob (c) Carol (d) Dave")
	if len(records) != 0 {
		t.Errorf("Parse() returned %d records, want 0 for a question below the length threshold", len(records))
	}
}

func TestInlineParseRejectsEmptyChoice(t *testing.T) {
	p := newTestInlineParser()

	records := p.Parse("What is the capital of France? (a) London (b) Paris (c) (d) Madrid")
	if len(records) != 0 {
		t.Errorf("Parse() returned %d records, want 0 when a choice is empty", len(records))
	}
}

func TestInlineParseNumbersByMatchOrdinal(t *testing.T) {
	p := newTestInlineParser()

	text := "Which planet is closest to the sun? (a) Venus (b) Mercury (c) Mars (d) Earth\n" +
		"Which planet is the largest one? (a) Jupiter (b) Saturn (c) Neptune (d) Uranus\n"
	records := p.Parse(text)

	if len(records) != 2 {
		t.Fatalf("Parse() returned %d records, want 2", len(records))
	}
	if records[0].QuestionNumber != 1 || records[1].QuestionNumber != 2 {
		t.Errorf("QuestionNumber = %d, %d, want 1, 2", records[0].QuestionNumber, records[1].QuestionNumber)
	}
}
