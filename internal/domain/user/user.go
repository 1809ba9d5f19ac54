package user

import (
	"errors"
	"strings"
	"time"

	"github.com/examprep/backend/internal/id"
)

var ErrInvalidName = errors.New("name cannot be empty")

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User is identified by a unique display name. There are no credentials;
// callers prove identity by sending the user ID in the user-id header.
type User struct {
	ID        string
	Name      string
	Role      Role
	CreatedAt time.Time
}

// New creates a student with a generated ID.
func New(name string) (*User, error) {
	return newWithRole(name, RoleStudent)
}

// NewAdmin creates an administrator with a generated ID.
func NewAdmin(name string) (*User, error) {
	return newWithRole(name, RoleAdmin)
}

func newWithRole(name string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return &User{
		ID:        id.GenerateID(),
		Name:      name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
