package store

import (
	"context"
	"errors"

	"github.com/examprep/backend/internal/domain/question"
	"github.com/examprep/backend/internal/domain/questionbank"
	"github.com/examprep/backend/internal/domain/user"
	"github.com/examprep/backend/internal/domain/wrongquestion"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// Store persists the four record types. Each method is a single-record
// operation or a best-effort cascade; there are no cross-call transactions.
type Store interface {
	CreateUser(ctx context.Context, u *user.User) error
	GetUser(ctx context.Context, id string) (*user.User, error)
	GetUserByName(ctx context.Context, name string) (*user.User, error)
	ListUsers(ctx context.Context) ([]*user.User, error)
	// UserNames maps each existing id to its user's name; unknown ids are absent.
	UserNames(ctx context.Context, ids []string) (map[string]string, error)

	SaveBank(ctx context.Context, bank *questionbank.QuestionBank) error
	GetBank(ctx context.Context, id string) (*questionbank.QuestionBank, error)
	UpdateBank(ctx context.Context, bank *questionbank.QuestionBank) error
	// DeleteBank removes the bank, its questions and their wrong-question rows.
	DeleteBank(ctx context.Context, id string) error
	ListPublicBanks(ctx context.Context) ([]*questionbank.QuestionBank, error)
	ListBanksByCreator(ctx context.Context, creatorID string) ([]*questionbank.QuestionBank, error)
	// BankNames maps each existing bank ID in ids to its name.
	BankNames(ctx context.Context, ids []string) (map[string]string, error)
	AdjustQuestionCount(ctx context.Context, bankID string, delta int) error

	SaveQuestions(ctx context.Context, questions []*question.Question) error
	GetQuestion(ctx context.Context, id string) (*question.Question, error)
	// GetQuestions returns the existing questions among ids, keyed by ID.
	GetQuestions(ctx context.Context, ids []string) (map[string]*question.Question, error)
	ListQuestionsByBank(ctx context.Context, bankID string) ([]*question.Question, error)
	UpdateQuestion(ctx context.Context, q *question.Question) error
	// DeleteQuestion removes the question and its wrong-question rows.
	DeleteQuestion(ctx context.Context, id string) error

	// UpsertWrongQuestion writes wq keyed by (UserID, QuestionID). An existing
	// row keeps its ID and gets wq's answer and timestamp; the stored row is returned.
	UpsertWrongQuestion(ctx context.Context, wq *wrongquestion.WrongQuestion) (*wrongquestion.WrongQuestion, error)
	FindWrongQuestion(ctx context.Context, userID, questionID string) (*wrongquestion.WrongQuestion, error)
	GetWrongQuestion(ctx context.Context, id string) (*wrongquestion.WrongQuestion, error)
	DeleteWrongQuestion(ctx context.Context, id string) error
	// ListWrongQuestionsByUser returns the user's rows, newest first.
	ListWrongQuestionsByUser(ctx context.Context, userID string) ([]*wrongquestion.WrongQuestion, error)

	Close() error
}
