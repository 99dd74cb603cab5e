package extractor

// Constants shared by the parsing paths
const (
	// choiceCount is the number of choice slots every record carries.
	choiceCount = 4

	// minStructuredChoices is the minimum number of recovered choices for a
	// numbered block to be kept on the section path.
	minStructuredChoices = 2

	// minQuestionLength rejects inline matches whose normalized question
	// text is too short to be a real question.
	minQuestionLength = 15
)

// QuestionRecord is one extracted multiple-choice question. Choices always
// has exactly four entries mapped positionally to letters a-d, and
// CorrectIndex is always in [0,3]. A CorrectIndex of 0 can mean either a
// resolved "a" answer or that no answer key entry existed for the question;
// callers should not treat 0 as high confidence without an answer key.
type QuestionRecord struct {
	QuestionText   string   `json:"question_text"`
	Choices        []string `json:"choices"`
	CorrectIndex   int      `json:"correct_index"`
	Category       string   `json:"category"`
	QuestionNumber int      `json:"question_number,omitempty"`
}

func nonEmptyChoices(choices []string) int {
	count := 0
	for _, c := range choices {
		if c != "" {
			count++
		}
	}
	return count
}
