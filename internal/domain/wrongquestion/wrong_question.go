package wrongquestion

import (
	"time"

	"github.com/examprep/backend/internal/domain/question"
	"github.com/examprep/backend/internal/id"
)

// WrongQuestion is the most recent incorrect answer a user gave to a question.
// There is at most one per (UserID, QuestionID); recording again overwrites
// WrongAnswer and Timestamp in place.
type WrongQuestion struct {
	ID          string
	UserID      string
	QuestionID  string
	WrongAnswer question.Answer
	Timestamp   time.Time
}

func New(userID, questionID string, answer question.Answer, at time.Time) *WrongQuestion {
	return &WrongQuestion{
		ID:          id.GenerateID(),
		UserID:      userID,
		QuestionID:  questionID,
		WrongAnswer: answer,
		Timestamp:   at,
	}
}

func (wq *WrongQuestion) OwnedBy(userID string) bool {
	return userID != "" && wq.UserID == userID
}

// Entry is a record joined to its question. Question is nil when the
// question has been deleted since the record was written.
type Entry struct {
	Record   WrongQuestion
	Question *question.Question
}
