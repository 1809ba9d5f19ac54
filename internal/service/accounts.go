package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/examprep/backend/internal/domain/questionbank"
	"github.com/examprep/backend/internal/domain/user"
	"github.com/examprep/backend/internal/store"
)

// Accounts handles name-based login and identity checks.
type Accounts struct {
	store  store.Store
	logger *slog.Logger
}

func NewAccounts(s store.Store, logger *slog.Logger) *Accounts {
	return &Accounts{store: s, logger: logger}
}

// Login returns the user with the given name, creating it on first login.
// A new user also gets a private, empty wrong-answer bank. The two writes are
// independent: when the bank cannot be saved the login still succeeds.
// created reports whether this call created the user.
func (a *Accounts) Login(ctx context.Context, name string) (u *user.User, created bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, user.ErrInvalidName
	}

	u, err = a.store.GetUserByName(ctx, name)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}

	u, err = user.New(name)
	if err != nil {
		return nil, false, err
	}
	if err := a.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// Lost a race with a concurrent first login.
			existing, err := a.store.GetUserByName(ctx, name)
			return existing, false, err
		}
		return nil, false, err
	}

	bank := questionbank.NewWrongAnswerBank(u.Name, u.ID)
	if err := a.store.SaveBank(ctx, bank); err != nil {
		a.logger.Error("failed to create wrong-answer bank", "error", err, "user_id", u.ID)
	}

	a.logger.Info("user created", "user_id", u.ID, "name", u.Name)
	return u, true, nil
}

// EnsureAdmin makes sure an administrator with the given name exists.
func (a *Accounts) EnsureAdmin(ctx context.Context, name string) (*user.User, error) {
	existing, err := a.store.GetUserByName(ctx, name)
	if err == nil {
		if !existing.IsAdmin() {
			a.logger.Warn("configured admin name belongs to a non-admin user", "user_id", existing.ID, "name", name)
		}
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	admin, err := user.NewAdmin(name)
	if err != nil {
		return nil, err
	}
	if err := a.store.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return a.store.GetUserByName(ctx, name)
		}
		return nil, err
	}
	a.logger.Info("admin user seeded", "user_id", admin.ID, "name", admin.Name)
	return admin, nil
}

// Authenticate resolves the caller named by a user-id header.
func (a *Accounts) Authenticate(ctx context.Context, userID string) (*user.User, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	u, err := a.store.GetUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	return u, err
}

func (a *Accounts) ListUsers(ctx context.Context) ([]*user.User, error) {
	return a.store.ListUsers(ctx)
}
