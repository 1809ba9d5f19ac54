package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/examprep/backend/internal/domain/question"
	"github.com/examprep/backend/internal/domain/wrongquestion"
)

// ============================================================================
// Wrong questions
// ============================================================================

const wrongQuestionColumns = "id, user_id, question_id, wrong_answer, timestamp"

// UpsertWrongQuestion is one statement, so concurrent writers for the same
// (user, question) resolve to whichever runs last.
func (s *SQLiteStore) UpsertWrongQuestion(ctx context.Context, wq *wrongquestion.WrongQuestion) (*wrongquestion.WrongQuestion, error) {
	answer, err := encodeAnswer(wq.WrongAnswer)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO wrong_questions (`+wrongQuestionColumns+`) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, question_id) DO UPDATE SET
			wrong_answer = excluded.wrong_answer,
			timestamp = excluded.timestamp
		RETURNING `+wrongQuestionColumns,
		wq.ID, wq.UserID, wq.QuestionID, answer, toUnix(wq.Timestamp),
	)
	return scanWrongQuestion(row)
}

func (s *SQLiteStore) FindWrongQuestion(ctx context.Context, userID, questionID string) (*wrongquestion.WrongQuestion, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+wrongQuestionColumns+" FROM wrong_questions WHERE user_id = ? AND question_id = ?",
		userID, questionID,
	)
	wq, err := scanWrongQuestion(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return wq, err
}

func (s *SQLiteStore) GetWrongQuestion(ctx context.Context, id string) (*wrongquestion.WrongQuestion, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+wrongQuestionColumns+" FROM wrong_questions WHERE id = ?", id)
	wq, err := scanWrongQuestion(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return wq, err
}

func (s *SQLiteStore) DeleteWrongQuestion(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM wrong_questions WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (s *SQLiteStore) ListWrongQuestionsByUser(ctx context.Context, userID string) ([]*wrongquestion.WrongQuestion, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+wrongQuestionColumns+" FROM wrong_questions WHERE user_id = ? ORDER BY timestamp DESC, id DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*wrongquestion.WrongQuestion
	for rows.Next() {
		wq, err := scanWrongQuestion(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, wq)
	}
	return records, rows.Err()
}

func scanWrongQuestion(row scanner) (*wrongquestion.WrongQuestion, error) {
	var wq wrongquestion.WrongQuestion
	var answer string
	var timestamp int64
	if err := row.Scan(&wq.ID, &wq.UserID, &wq.QuestionID, &answer, &timestamp); err != nil {
		return nil, err
	}
	a, err := question.InferAnswer([]byte(answer))
	if err != nil {
		return nil, fmt.Errorf("decode wrong answer of %s: %w", wq.ID, err)
	}
	wq.WrongAnswer = a
	wq.Timestamp = fromUnix(timestamp)
	return &wq, nil
}
