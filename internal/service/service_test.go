package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/examprep/backend/internal/domain/question"
	"github.com/examprep/backend/internal/domain/questionbank"
	"github.com/examprep/backend/internal/domain/user"
	"github.com/examprep/backend/internal/store"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// clock returns increasing times one second apart.
func clock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

type world struct {
	store  *store.SQLiteStore
	owner  *user.User
	bank   *questionbank.QuestionBank
	q1     *question.Question // single, answer B
	q2     *question.Question // multiple, answer A C
	q3     *question.Question // tf, answer true
	wrongs *WrongAnswers
}

func newWorld(t *testing.T) *world {
	t.Helper()
	ctx := context.Background()
	s := newTestStore(t)

	owner, _, err := NewAccounts(s, discard).Login(ctx, "U1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	lib := NewLibrary(s, discard)
	bank, err := lib.CreateBank(ctx, owner.ID, "Go basics", "", true)
	if err != nil {
		t.Fatalf("CreateBank: %v", err)
	}

	abcd := []question.Option{{Label: "A", Content: "a"}, {Label: "B", Content: "b"}, {Label: "C", Content: "c"}, {Label: "D", Content: "d"}}
	created, err := lib.ImportQuestions(ctx, owner.ID, bank.ID, []QuestionDraft{
		{Type: question.TypeSingle, Content: "Q1", Options: abcd, Answer: []byte(`"B"`)},
		{Type: question.TypeMultiple, Content: "Q2", Options: abcd, Answer: []byte(`["A","C"]`)},
		{Type: question.TypeTrueFalse, Content: "Q3", Answer: []byte(`true`), Explanation: "It is."},
	})
	if err != nil {
		t.Fatalf("ImportQuestions: %v", err)
	}

	wrongs := NewWrongAnswers(s, discard)
	wrongs.now = clock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	return &world{
		store:  s,
		owner:  owner,
		bank:   bank,
		q1:     created[0],
		q2:     created[1],
		q3:     created[2],
		wrongs: wrongs,
	}
}
