package user_test

import (
	"errors"
	"testing"

	"github.com/examprep/backend/internal/domain/user"
)

func TestNewUser(t *testing.T) {
	u, err := user.New("  alice ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.Name != "alice" {
		t.Errorf("expected name %q, got %q", "alice", u.Name)
	}
	if u.ID == "" {
		t.Error("expected non-empty ID")
	}
	if u.Role != user.RoleStudent || u.IsAdmin() {
		t.Errorf("expected student role, got %q", u.Role)
	}
}

func TestNewUser_EmptyName(t *testing.T) {
	if _, err := user.New(" "); !errors.Is(err, user.ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestNewAdmin(t *testing.T) {
	u, err := user.NewAdmin("root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !u.IsAdmin() {
		t.Error("expected admin role")
	}
}

func TestNewUser_UniqueIDs(t *testing.T) {
	a, _ := user.New("A")
	b, _ := user.New("B")

	if a.ID == b.ID {
		t.Error("expected different IDs for different users")
	}
}
