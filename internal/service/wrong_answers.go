package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/examprep/backend/internal/domain/question"
	"github.com/examprep/backend/internal/domain/wrongquestion"
	"github.com/examprep/backend/internal/store"
)

// WrongAnswers keeps each user's log of incorrectly answered questions.
type WrongAnswers struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewWrongAnswers(s store.Store, logger *slog.Logger) *WrongAnswers {
	return &WrongAnswers{store: s, logger: logger, now: time.Now}
}

// Record stores answer as the user's latest wrong answer to the question.
// There is never more than one record per (user, question): a repeat
// overwrites the answer and timestamp of the existing one.
func (w *WrongAnswers) Record(ctx context.Context, userID, questionID string, answer question.Answer) (*wrongquestion.WrongQuestion, error) {
	q, err := w.store.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if err := question.CheckAnswer(*q, answer); err != nil {
		return nil, err
	}
	return w.record(ctx, userID, q.ID, answer)
}

func (w *WrongAnswers) record(ctx context.Context, userID, questionID string, answer question.Answer) (*wrongquestion.WrongQuestion, error) {
	wq := wrongquestion.New(userID, questionID, answer, w.now().UTC())
	return w.store.UpsertWrongQuestion(ctx, wq)
}

// List returns the user's records, newest first, joined to their questions.
// Records whose question no longer exists are kept with a nil Question.
func (w *WrongAnswers) List(ctx context.Context, userID string) ([]wrongquestion.Entry, error) {
	records, err := w.store.ListWrongQuestionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.QuestionID
	}
	questions, err := w.store.GetQuestions(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]wrongquestion.Entry, len(records))
	for i, r := range records {
		entries[i] = wrongquestion.Entry{Record: *r, Question: questions[r.QuestionID]}
		if entries[i].Question == nil {
			w.logger.Debug("wrong question references a missing question", "id", r.ID, "question_id", r.QuestionID)
		}
	}
	return entries, nil
}

// Remove deletes one of the caller's records.
func (w *WrongAnswers) Remove(ctx context.Context, userID, id string) error {
	wq, err := w.store.GetWrongQuestion(ctx, id)
	if err != nil {
		return err
	}
	if !wq.OwnedBy(userID) {
		return ErrForbidden
	}
	return w.store.DeleteWrongQuestion(ctx, id)
}

// Stats summarises the user's wrong answers by question type and lists the
// banks they come from. Records pointing at deleted questions are not
// counted; banks that no longer exist are left out of the list.
func (w *WrongAnswers) Stats(ctx context.Context, userID string) (wrongquestion.Stats, error) {
	entries, err := w.List(ctx, userID)
	if err != nil {
		return wrongquestion.Stats{}, err
	}

	summary := wrongquestion.Aggregate(entries)
	names, err := w.store.BankNames(ctx, summary.BankIDs)
	if err != nil {
		return wrongquestion.Stats{}, err
	}
	return wrongquestion.Resolve(summary, names), nil
}

// Verdict is the outcome of answering a single question live.
type Verdict struct {
	Correct       bool
	CorrectAnswer question.Answer
	Explanation   string
	// Record is the stored wrong answer; nil when the answer was correct.
	Record *wrongquestion.WrongQuestion
}

// Submit evaluates a single answer and records it when it is wrong.
func (w *WrongAnswers) Submit(ctx context.Context, userID, questionID string, answer question.Answer) (Verdict, error) {
	q, err := w.store.GetQuestion(ctx, questionID)
	if err != nil {
		return Verdict{}, err
	}
	if err := question.CheckAnswer(*q, answer); err != nil {
		return Verdict{}, err
	}

	verdict := Verdict{
		Correct:       question.Evaluate(*q, answer),
		CorrectAnswer: q.Answer,
		Explanation:   q.Explanation,
	}
	if verdict.Correct {
		return verdict, nil
	}

	verdict.Record, err = w.record(ctx, userID, q.ID, answer)
	if err != nil {
		return Verdict{}, err
	}
	return verdict, nil
}
