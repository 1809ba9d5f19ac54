package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/examprep/backend/internal/domain/user"
)

// ============================================================================
// Users
// ============================================================================

func (s *SQLiteStore) CreateUser(ctx context.Context, u *user.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, name, role, created_at) VALUES (?, ?, ?, ?)",
		u.ID, u.Name, string(u.Role), toUnix(u.CreatedAt),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("user %q: %w", u.Name, ErrDuplicate)
	}
	return err
}

func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*user.User, error) {
	return s.getUserWhere(ctx, "id = ?", id)
}

func (s *SQLiteStore) GetUserByName(ctx context.Context, name string) (*user.User, error) {
	return s.getUserWhere(ctx, "name = ?", name)
}

func (s *SQLiteStore) getUserWhere(ctx context.Context, where string, arg string) (*user.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, role, created_at FROM users WHERE "+where, arg)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *SQLiteStore) ListUsers(ctx context.Context) ([]*user.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, role, created_at FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *SQLiteStore) UserNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	placeholders, args := inClause(ids)
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM users WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*user.User, error) {
	var u user.User
	var role string
	var createdAt int64
	if err := row.Scan(&u.ID, &u.Name, &role, &createdAt); err != nil {
		return nil, err
	}
	u.Role = user.Role(role)
	u.CreatedAt = fromUnix(createdAt)
	return &u, nil
}
