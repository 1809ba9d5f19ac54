package question

import (
	"errors"
	"fmt"
	"strings"

	"github.com/examprep/backend/internal/id"
)

var (
	ErrInvalidQuestion = errors.New("invalid question")
	ErrInvalidAnswer   = errors.New("invalid answer")
)

type Type string

const (
	TypeSingle    Type = "single"
	TypeMultiple  Type = "multiple"
	TypeTrueFalse Type = "tf"
)

// Types lists every question type in display order.
var Types = []Type{TypeSingle, TypeMultiple, TypeTrueFalse}

func (t Type) Valid() bool {
	switch t {
	case TypeSingle, TypeMultiple, TypeTrueFalse:
		return true
	}
	return false
}

// Option is one labelled choice, e.g. {"B", "Goroutines are multiplexed onto threads"}.
type Option struct {
	Label   string
	Content string
}

type Question struct {
	ID          string
	Type        Type
	Content     string
	Options     []Option // empty for tf questions
	Answer      Answer
	Explanation string
	BankID      string
}

// New builds a validated question belonging to bankID.
func New(bankID string, t Type, content string, options []Option, answer Answer, explanation string) (*Question, error) {
	if t == TypeTrueFalse {
		options = nil
	}
	q := &Question{
		ID:          id.GenerateID(),
		Type:        t,
		Content:     strings.TrimSpace(content),
		Options:     options,
		Answer:      answer,
		Explanation: explanation,
		BankID:      bankID,
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Validate checks that the answer shape matches the type and that choice
// answers only reference existing option labels.
func (q *Question) Validate() error {
	if !q.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidQuestion, q.Type)
	}
	if strings.TrimSpace(q.Content) == "" {
		return fmt.Errorf("%w: content cannot be empty", ErrInvalidQuestion)
	}
	if q.Answer.Type() != q.Type {
		return fmt.Errorf("%w: %s question needs a %s answer", ErrInvalidAnswer, q.Type, q.Type)
	}
	if q.Type == TypeTrueFalse {
		return nil
	}

	if len(q.Options) == 0 {
		return fmt.Errorf("%w: %s question needs options", ErrInvalidQuestion, q.Type)
	}
	labels := make(map[string]struct{}, len(q.Options))
	for _, o := range q.Options {
		if o.Label == "" {
			return fmt.Errorf("%w: option label cannot be empty", ErrInvalidQuestion)
		}
		if _, dup := labels[o.Label]; dup {
			return fmt.Errorf("%w: duplicate option label %q", ErrInvalidQuestion, o.Label)
		}
		labels[o.Label] = struct{}{}
	}

	answerLabels := q.Answer.Labels()
	if q.Type == TypeSingle {
		answerLabels = []string{q.Answer.Label()}
	}
	if len(answerLabels) == 0 {
		return fmt.Errorf("%w: at least one correct option is required", ErrInvalidAnswer)
	}
	seen := make(map[string]struct{}, len(answerLabels))
	for _, l := range answerLabels {
		if _, ok := labels[l]; !ok {
			return fmt.Errorf("%w: %q is not an option label", ErrInvalidAnswer, l)
		}
		if _, dup := seen[l]; dup {
			return fmt.Errorf("%w: duplicate label %q", ErrInvalidAnswer, l)
		}
		seen[l] = struct{}{}
	}
	return nil
}

// CheckAnswer reports whether a submitted answer has the shape the question
// expects. It says nothing about correctness.
func CheckAnswer(q Question, submitted Answer) error {
	if submitted.IsZero() {
		return fmt.Errorf("%w: answer is required", ErrInvalidAnswer)
	}
	if submitted.Type() != q.Type {
		return fmt.Errorf("%w: %s answer for a %s question", ErrInvalidAnswer, submitted.Type(), q.Type)
	}
	return nil
}
