package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/examprep/backend/internal/domain/exam"
	"github.com/examprep/backend/internal/domain/question"
	"github.com/examprep/backend/internal/store"
)

// Exams builds exam papers and grades finished ones. Incorrect answers go
// to the wrong-answer log.
type Exams struct {
	store  store.Store
	wrongs *WrongAnswers
	logger *slog.Logger
}

func NewExams(s store.Store, wrongs *WrongAnswers, logger *slog.Logger) *Exams {
	return &Exams{store: s, wrongs: wrongs, logger: logger}
}

// Paper builds an exam over every question in a bank.
func (e *Exams) Paper(ctx context.Context, bankID string, config exam.Config) (*exam.Paper, error) {
	if _, err := e.store.GetBank(ctx, bankID); err != nil {
		return nil, err
	}
	stored, err := e.store.ListQuestionsByBank(ctx, bankID)
	if err != nil {
		return nil, err
	}
	return exam.NewPaper(bankID, values(stored), config), nil
}

// WrongPaper builds an exam over the questions the user last answered
// incorrectly, most recent mistakes first.
func (e *Exams) WrongPaper(ctx context.Context, userID string, config exam.Config) (*exam.Paper, error) {
	entries, err := e.wrongs.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	questions := make([]question.Question, 0, len(entries))
	for _, entry := range entries {
		if entry.Question != nil {
			questions = append(questions, *entry.Question)
		}
	}
	return exam.NewPaper("", questions, config), nil
}

// Grade scores a finished exam. questionIDs fixes the paper and its order;
// answers holds whatever the user submitted, keyed by question ID. Every
// incorrect answer is recorded; unanswered questions are not.
func (e *Exams) Grade(ctx context.Context, userID string, questionIDs []string, answers map[string]question.Answer) (exam.Result, error) {
	if len(questionIDs) == 0 {
		return exam.Result{}, fmt.Errorf("%w: exam has no questions", ErrInvalidInput)
	}
	found, err := e.store.GetQuestions(ctx, questionIDs)
	if err != nil {
		return exam.Result{}, err
	}

	questions := make([]question.Question, 0, len(questionIDs))
	for _, id := range questionIDs {
		q, ok := found[id]
		if !ok {
			return exam.Result{}, fmt.Errorf("question %s: %w", id, store.ErrNotFound)
		}
		if a, ok := answers[id]; ok && !a.IsZero() {
			if err := question.CheckAnswer(*q, a); err != nil {
				return exam.Result{}, err
			}
		}
		questions = append(questions, *q)
	}

	result := exam.Grade(questions, answers)
	for _, outcome := range result.Outcomes {
		if outcome.Status != exam.StatusIncorrect {
			continue
		}
		if _, err := e.wrongs.record(ctx, userID, outcome.QuestionID, outcome.Submitted); err != nil {
			return exam.Result{}, err
		}
	}
	return result, nil
}

func values(questions []*question.Question) []question.Question {
	out := make([]question.Question, len(questions))
	for i, q := range questions {
		out[i] = *q
	}
	return out
}
