package exam

import (
	"math/rand"

	"github.com/examprep/backend/internal/domain/question"
)

// Paper is the ordered list of questions a user works through in one exam.
// BankID is empty for a paper built from the user's wrong-question list.
type Paper struct {
	BankID    string
	Questions []question.Question
}

// NewPaper builds a paper from questions. If MaxQuestions is set and less
// than the number available, only that many questions are included; with
// Shuffle the selection is random, otherwise it is the first N.
func NewPaper(bankID string, questions []question.Question, config Config) *Paper {
	selected := make([]question.Question, len(questions))
	copy(selected, questions)

	if config.Shuffle {
		rand.Shuffle(len(selected), func(i, j int) {
			selected[i], selected[j] = selected[j], selected[i]
		})
	}

	if config.MaxQuestions != nil && *config.MaxQuestions > 0 && *config.MaxQuestions < len(selected) {
		selected = selected[:*config.MaxQuestions]
	}

	return &Paper{
		BankID:    bankID,
		Questions: selected,
	}
}
