// internal/store/sqlite.go
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/examprep/backend/internal/domain/question"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    role TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS question_banks (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    is_public BOOLEAN NOT NULL DEFAULT FALSE,
    creator_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    question_count INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_banks_creator ON question_banks (creator_id);
CREATE INDEX IF NOT EXISTS idx_banks_public ON question_banks (is_public);

CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    bank_id TEXT NOT NULL,
    type TEXT NOT NULL,
    content TEXT NOT NULL,
    options TEXT NOT NULL DEFAULT '[]',
    answer TEXT NOT NULL,
    explanation TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_questions_bank ON questions (bank_id);

CREATE TABLE IF NOT EXISTS wrong_questions (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    question_id TEXT NOT NULL,
    wrong_answer TEXT NOT NULL,
    timestamp INTEGER NOT NULL,
    UNIQUE (user_id, question_id)
);
CREATE INDEX IF NOT EXISTS idx_wrong_questions_question ON wrong_questions (question_id);
`

// SQLiteStore is the embedded backend. Rows reference each other by ID
// without foreign keys, mirroring the document store.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	// A single connection serialises writers; SQLite allows only one anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type optionRecord struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

func encodeOptions(options []question.Option) (string, error) {
	records := make([]optionRecord, len(options))
	for i, o := range options {
		records[i] = optionRecord{Label: o.Label, Content: o.Content}
	}
	b, err := json.Marshal(records)
	return string(b), err
}

func decodeOptions(raw string) ([]question.Option, error) {
	var records []optionRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	options := make([]question.Option, len(records))
	for i, r := range records {
		options[i] = question.Option{Label: r.Label, Content: r.Content}
	}
	return options, nil
}

func encodeAnswer(a question.Answer) (string, error) {
	b, err := json.Marshal(a)
	return string(b), err
}

func toUnix(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromUnix(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// inClause returns "?, ?, ?" and the matching arguments.
func inClause(ids []string) (string, []any) {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", "), args
}

func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
