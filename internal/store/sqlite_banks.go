package store

import (
	"context"
	"database/sql"

	"github.com/examprep/backend/internal/domain/questionbank"
)

// ============================================================================
// Question banks
// ============================================================================

const bankColumns = "id, name, description, is_public, creator_id, created_at, question_count"

func (s *SQLiteStore) SaveBank(ctx context.Context, bank *questionbank.QuestionBank) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO question_banks ("+bankColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		bank.ID, bank.Name, bank.Description, bank.IsPublic, bank.CreatorID, toUnix(bank.CreatedAt), bank.QuestionCount,
	)
	return err
}

func (s *SQLiteStore) GetBank(ctx context.Context, id string) (*questionbank.QuestionBank, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+bankColumns+" FROM question_banks WHERE id = ?", id)
	bank, err := scanBank(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return bank, nil
}

func (s *SQLiteStore) UpdateBank(ctx context.Context, bank *questionbank.QuestionBank) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE question_banks SET name = ?, description = ?, is_public = ? WHERE id = ?",
		bank.Name, bank.Description, bank.IsPublic, bank.ID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (s *SQLiteStore) DeleteBank(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM wrong_questions
		WHERE question_id IN (SELECT id FROM questions WHERE bank_id = ?)
	`, id)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM questions WHERE bank_id = ?", id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM question_banks WHERE id = ?", id)
	if err != nil {
		return err
	}
	if err := checkAffected(result); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) ListPublicBanks(ctx context.Context) ([]*questionbank.QuestionBank, error) {
	return s.listBanks(ctx, "is_public = ?", true)
}

func (s *SQLiteStore) ListBanksByCreator(ctx context.Context, creatorID string) ([]*questionbank.QuestionBank, error) {
	return s.listBanks(ctx, "creator_id = ?", creatorID)
}

func (s *SQLiteStore) listBanks(ctx context.Context, where string, arg any) ([]*questionbank.QuestionBank, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+bankColumns+" FROM question_banks WHERE "+where+" ORDER BY created_at, id", arg,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banks []*questionbank.QuestionBank
	for rows.Next() {
		bank, err := scanBank(rows)
		if err != nil {
			return nil, err
		}
		banks = append(banks, bank)
	}
	return banks, rows.Err()
}

func (s *SQLiteStore) BankNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	placeholders, args := inClause(ids)
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM question_banks WHERE id IN ("+placeholders+")", args...)
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

func (s *SQLiteStore) AdjustQuestionCount(ctx context.Context, bankID string, delta int) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE question_banks SET question_count = MAX(question_count + ?, 0) WHERE id = ?",
		delta, bankID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func scanBank(row scanner) (*questionbank.QuestionBank, error) {
	var bank questionbank.QuestionBank
	var createdAt int64
	err := row.Scan(&bank.ID, &bank.Name, &bank.Description, &bank.IsPublic, &bank.CreatorID, &createdAt, &bank.QuestionCount)
	if err != nil {
		return nil, err
	}
	bank.CreatedAt = fromUnix(createdAt)
	return &bank, nil
}
