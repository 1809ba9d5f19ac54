package exam

import "github.com/examprep/backend/internal/domain/question"

type Status string

const (
	StatusCorrect    Status = "correct"
	StatusIncorrect  Status = "incorrect"
	StatusUnanswered Status = "unanswered"
)

type Outcome struct {
	QuestionID string
	Status     Status
	Submitted  question.Answer // zero when unanswered
	Correct    question.Answer
}

type Result struct {
	Outcomes   []Outcome
	Total      int
	Correct    int
	Incorrect  int
	Unanswered int
	Accuracy   int // percent of all questions answered correctly, 0-100
}

// Grade scores answers (keyed by question ID) against questions, in question
// order. A question with no entry, or a zero answer, is unanswered rather
// than incorrect.
func Grade(questions []question.Question, answers map[string]question.Answer) Result {
	result := Result{
		Outcomes: make([]Outcome, len(questions)),
		Total:    len(questions),
	}

	for i, q := range questions {
		submitted := answers[q.ID]
		outcome := Outcome{
			QuestionID: q.ID,
			Submitted:  submitted,
			Correct:    q.Answer,
		}

		switch {
		case submitted.IsZero():
			outcome.Status = StatusUnanswered
			result.Unanswered++
		case question.Evaluate(q, submitted):
			outcome.Status = StatusCorrect
			result.Correct++
		default:
			outcome.Status = StatusIncorrect
			result.Incorrect++
		}
		result.Outcomes[i] = outcome
	}

	if result.Total > 0 {
		result.Accuracy = result.Correct * 100 / result.Total
	}
	return result
}
