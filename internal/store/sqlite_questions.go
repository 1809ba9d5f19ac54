package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/examprep/backend/internal/domain/question"
)

// ============================================================================
// Questions
// ============================================================================

const questionColumns = "id, bank_id, type, content, options, answer, explanation"

// SaveQuestions inserts all questions or none.
func (s *SQLiteStore) SaveQuestions(ctx context.Context, questions []*question.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO questions ("+questionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, q := range questions {
		options, answer, err := encodeQuestion(q)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, q.ID, q.BankID, string(q.Type), q.Content, options, answer, q.Explanation); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetQuestion(ctx context.Context, id string) (*question.Question, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+questionColumns+" FROM questions WHERE id = ?", id)
	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (s *SQLiteStore) GetQuestions(ctx context.Context, ids []string) (map[string]*question.Question, error) {
	found := make(map[string]*question.Question, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	placeholders, args := inClause(ids)
	rows, err := s.db.QueryContext(ctx, "SELECT "+questionColumns+" FROM questions WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		found[q.ID] = q
	}
	return found, rows.Err()
}

func (s *SQLiteStore) ListQuestionsByBank(ctx context.Context, bankID string) ([]*question.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE bank_id = ? ORDER BY rowid", bankID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*question.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *SQLiteStore) UpdateQuestion(ctx context.Context, q *question.Question) error {
	options, answer, err := encodeQuestion(q)
	if err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx,
		"UPDATE questions SET type = ?, content = ?, options = ?, answer = ?, explanation = ? WHERE id = ?",
		string(q.Type), q.Content, options, answer, q.Explanation, q.ID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id)
	if err != nil {
		return err
	}
	if err := checkAffected(result); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM wrong_questions WHERE question_id = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}

func encodeQuestion(q *question.Question) (options, answer string, err error) {
	if options, err = encodeOptions(q.Options); err != nil {
		return "", "", fmt.Errorf("encode options of %s: %w", q.ID, err)
	}
	if answer, err = encodeAnswer(q.Answer); err != nil {
		return "", "", fmt.Errorf("encode answer of %s: %w", q.ID, err)
	}
	return options, answer, nil
}

func scanQuestion(row scanner) (*question.Question, error) {
	var q question.Question
	var qType, options, answer string
	if err := row.Scan(&q.ID, &q.BankID, &qType, &q.Content, &options, &answer, &q.Explanation); err != nil {
		return nil, err
	}
	q.Type = question.Type(qType)

	var err error
	if q.Options, err = decodeOptions(options); err != nil {
		return nil, fmt.Errorf("decode options of %s: %w", q.ID, err)
	}
	if q.Answer, err = question.DecodeAnswer(q.Type, []byte(answer)); err != nil {
		return nil, fmt.Errorf("decode answer of %s: %w", q.ID, err)
	}
	return &q, nil
}
