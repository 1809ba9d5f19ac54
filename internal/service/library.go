package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/examprep/backend/internal/domain/question"
	"github.com/examprep/backend/internal/domain/questionbank"
	"github.com/examprep/backend/internal/store"
)

// Library manages question banks and their questions. Reads are open to
// every user; mutations are limited to the bank's creator.
type Library struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewLibrary(s store.Store, logger *slog.Logger) *Library {
	return &Library{store: s, logger: logger, now: time.Now}
}

// QuestionDraft is a question as submitted by a client, before it has an ID.
// Answer is the untagged JSON value and is decoded against Type.
type QuestionDraft struct {
	Type        question.Type
	Content     string
	Options     []question.Option
	Answer      json.RawMessage
	Explanation string
}

func (d QuestionDraft) build(bankID string) (*question.Question, error) {
	if !d.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", question.ErrInvalidQuestion, d.Type)
	}
	answer, err := question.DecodeAnswer(d.Type, d.Answer)
	if err != nil {
		return nil, err
	}
	return question.New(bankID, d.Type, d.Content, d.Options, answer, d.Explanation)
}

// ============================================================================
// Banks
// ============================================================================

func (l *Library) CreateBank(ctx context.Context, userID, name, description string, isPublic bool) (*questionbank.QuestionBank, error) {
	bank, err := questionbank.New(name, description, isPublic, userID)
	if err != nil {
		return nil, err
	}
	if err := l.store.SaveBank(ctx, bank); err != nil {
		return nil, err
	}
	return bank, nil
}

func (l *Library) GetBank(ctx context.Context, bankID string) (*questionbank.QuestionBank, error) {
	return l.store.GetBank(ctx, bankID)
}

func (l *Library) ListPublicBanks(ctx context.Context) ([]*questionbank.QuestionBank, error) {
	return l.store.ListPublicBanks(ctx)
}

func (l *Library) ListUserBanks(ctx context.Context, creatorID string) ([]*questionbank.QuestionBank, error) {
	return l.store.ListBanksByCreator(ctx, creatorID)
}

// CreatorNames maps the creators of banks to their names. Creators that no
// longer exist are absent.
func (l *Library) CreatorNames(ctx context.Context, banks ...*questionbank.QuestionBank) (map[string]string, error) {
	ids := make([]string, 0, len(banks))
	seen := make(map[string]struct{}, len(banks))
	for _, b := range banks {
		if _, dup := seen[b.CreatorID]; dup {
			continue
		}
		seen[b.CreatorID] = struct{}{}
		ids = append(ids, b.CreatorID)
	}
	return l.store.UserNames(ctx, ids)
}

func (l *Library) UpdateBank(ctx context.Context, userID, bankID string, patch questionbank.Patch) (*questionbank.QuestionBank, error) {
	bank, err := l.ownedBank(ctx, userID, bankID)
	if err != nil {
		return nil, err
	}
	bank.Apply(patch)
	if err := l.store.UpdateBank(ctx, bank); err != nil {
		return nil, err
	}
	return bank, nil
}

// DeleteBank removes the bank together with its questions and every
// wrong-question record that points at them.
func (l *Library) DeleteBank(ctx context.Context, userID, bankID string) error {
	if _, err := l.ownedBank(ctx, userID, bankID); err != nil {
		return err
	}
	return l.store.DeleteBank(ctx, bankID)
}

func (l *Library) ownedBank(ctx context.Context, userID, bankID string) (*questionbank.QuestionBank, error) {
	bank, err := l.store.GetBank(ctx, bankID)
	if err != nil {
		return nil, err
	}
	if !bank.OwnedBy(userID) {
		return nil, ErrForbidden
	}
	return bank, nil
}

// ============================================================================
// Questions
// ============================================================================

func (l *Library) CreateQuestion(ctx context.Context, userID, bankID string, draft QuestionDraft) (*question.Question, error) {
	created, err := l.ImportQuestions(ctx, userID, bankID, []QuestionDraft{draft})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

// ImportQuestions validates every draft before writing any of them, then
// inserts the batch and raises the bank's question count by its size.
func (l *Library) ImportQuestions(ctx context.Context, userID, bankID string, drafts []QuestionDraft) ([]*question.Question, error) {
	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: no questions to import", ErrInvalidInput)
	}
	if _, err := l.ownedBank(ctx, userID, bankID); err != nil {
		return nil, err
	}

	questions := make([]*question.Question, len(drafts))
	for i, d := range drafts {
		q, err := d.build(bankID)
		if err != nil {
			if len(drafts) == 1 {
				return nil, err
			}
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions[i] = q
	}

	if err := l.store.SaveQuestions(ctx, questions); err != nil {
		return nil, err
	}
	l.adjustCount(ctx, bankID, len(questions))
	return questions, nil
}

func (l *Library) GetQuestion(ctx context.Context, questionID string) (*question.Question, error) {
	return l.store.GetQuestion(ctx, questionID)
}

func (l *Library) ListBankQuestions(ctx context.Context, bankID string) ([]*question.Question, error) {
	if _, err := l.store.GetBank(ctx, bankID); err != nil {
		return nil, err
	}
	return l.store.ListQuestionsByBank(ctx, bankID)
}

func (l *Library) UpdateQuestion(ctx context.Context, userID, questionID string, patch question.Patch) (*question.Question, error) {
	q, err := l.ownedQuestion(ctx, userID, questionID)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(q); err != nil {
		return nil, err
	}
	if err := l.store.UpdateQuestion(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// DeleteQuestion removes the question and the wrong-question records that
// point at it.
func (l *Library) DeleteQuestion(ctx context.Context, userID, questionID string) error {
	q, err := l.ownedQuestion(ctx, userID, questionID)
	if err != nil {
		return err
	}
	if err := l.store.DeleteQuestion(ctx, questionID); err != nil {
		return err
	}
	l.adjustCount(ctx, q.BankID, -1)
	return nil
}

func (l *Library) ownedQuestion(ctx context.Context, userID, questionID string) (*question.Question, error) {
	q, err := l.store.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if _, err := l.ownedBank(ctx, userID, q.BankID); err != nil {
		return nil, err
	}
	return q, nil
}

// adjustCount keeps the denormalized count in step. The questions are already
// written, so a failure here is logged rather than returned.
func (l *Library) adjustCount(ctx context.Context, bankID string, delta int) {
	if err := l.store.AdjustQuestionCount(ctx, bankID, delta); err != nil {
		l.logger.Warn("failed to adjust question count", "error", err, "bank_id", bankID, "delta", delta)
	}
}

// ============================================================================
// Export
// ============================================================================

type BankExport struct {
	ExportedAt time.Time
	Bank       *questionbank.QuestionBank
	Questions  []*question.Question
}

// ExportBank returns a bank and all of its questions in bank order.
func (l *Library) ExportBank(ctx context.Context, bankID string) (*BankExport, error) {
	bank, err := l.store.GetBank(ctx, bankID)
	if err != nil {
		return nil, err
	}
	questions, err := l.store.ListQuestionsByBank(ctx, bankID)
	if err != nil {
		return nil, err
	}
	return &BankExport{
		ExportedAt: l.now().UTC(),
		Bank:       bank,
		Questions:  questions,
	}, nil
}
