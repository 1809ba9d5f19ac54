package questionbank

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/examprep/backend/internal/id"
)

var ErrInvalidBank = errors.New("invalid question bank")

type QuestionBank struct {
	ID            string
	Name          string
	Description   string
	IsPublic      bool
	CreatorID     string
	CreatedAt     time.Time
	QuestionCount int // denormalized, maintained by the library service
}

func New(name, description string, isPublic bool, creatorID string) (*QuestionBank, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidBank)
	}
	return &QuestionBank{
		ID:          id.GenerateID(),
		Name:        name,
		Description: description,
		IsPublic:    isPublic,
		CreatorID:   creatorID,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// NewWrongAnswerBank creates the private, empty bank every user receives on
// first login.
func NewWrongAnswerBank(userName, creatorID string) *QuestionBank {
	return &QuestionBank{
		ID:          id.GenerateID(),
		Name:        userName + "'s wrong answers",
		Description: "Personal collection of questions " + userName + " answered incorrectly",
		IsPublic:    false,
		CreatorID:   creatorID,
		CreatedAt:   time.Now().UTC(),
	}
}

func (qb *QuestionBank) OwnedBy(userID string) bool {
	return userID != "" && qb.CreatorID == userID
}

// Patch holds the owner-editable fields. Nil fields are left alone, and an
// empty name keeps the current one.
type Patch struct {
	Name        *string
	Description *string
	IsPublic    *bool
}

func (qb *QuestionBank) Apply(p Patch) {
	if p.Name != nil {
		if name := strings.TrimSpace(*p.Name); name != "" {
			qb.Name = name
		}
	}
	if p.Description != nil {
		qb.Description = *p.Description
	}
	if p.IsPublic != nil {
		qb.IsPublic = *p.IsPublic
	}
}
