package service

import (
	"context"
	"errors"
	"testing"

	"github.com/examprep/backend/internal/domain/question"
	"github.com/examprep/backend/internal/domain/questionbank"
	"github.com/examprep/backend/internal/domain/user"
	"github.com/examprep/backend/internal/store"
)

func newStranger(t *testing.T, w *world) *user.User {
	t.Helper()
	u, _, err := NewAccounts(w.store, discard).Login(context.Background(), "stranger")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return u
}

func TestImportQuestions_IncrementsCount(t *testing.T) {
	w := newWorld(t)

	bank, err := w.store.GetBank(context.Background(), w.bank.ID)
	if err != nil {
		t.Fatalf("GetBank: %v", err)
	}
	if bank.QuestionCount != 3 {
		t.Errorf("QuestionCount = %d, want 3", bank.QuestionCount)
	}
}

func TestImportQuestions_RejectsWholeBatch(t *testing.T) {
	w := newWorld(t)
	lib := NewLibrary(w.store, discard)
	ctx := context.Background()

	_, err := lib.ImportQuestions(ctx, w.owner.ID, w.bank.ID, []QuestionDraft{
		{Type: question.TypeTrueFalse, Content: "ok", Answer: []byte(`false`)},
		{Type: question.TypeTrueFalse, Content: "bad", Answer: []byte(`"true"`)},
	})
	if !errors.Is(err, question.ErrInvalidAnswer) {
		t.Fatalf("error = %v, want ErrInvalidAnswer", err)
	}

	questions, _ := lib.ListBankQuestions(ctx, w.bank.ID)
	if len(questions) != 3 {
		t.Errorf("a rejected batch must not write anything, got %d questions", len(questions))
	}

	if _, err := lib.ImportQuestions(ctx, w.owner.ID, w.bank.ID, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty batch error = %v, want ErrInvalidInput", err)
	}
}

func TestLibrary_OnlyOwnerMutates(t *testing.T) {
	w := newWorld(t)
	lib := NewLibrary(w.store, discard)
	stranger := newStranger(t, w)
	ctx := context.Background()

	name := "mine now"
	if _, err := lib.UpdateBank(ctx, stranger.ID, w.bank.ID, questionbank.Patch{Name: &name}); !errors.Is(err, ErrForbidden) {
		t.Errorf("UpdateBank error = %v, want ErrForbidden", err)
	}
	if err := lib.DeleteBank(ctx, stranger.ID, w.bank.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("DeleteBank error = %v, want ErrForbidden", err)
	}
	draft := QuestionDraft{Type: question.TypeTrueFalse, Content: "x", Answer: []byte(`true`)}
	if _, err := lib.CreateQuestion(ctx, stranger.ID, w.bank.ID, draft); !errors.Is(err, ErrForbidden) {
		t.Errorf("CreateQuestion error = %v, want ErrForbidden", err)
	}
	if err := lib.DeleteQuestion(ctx, stranger.ID, w.q1.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("DeleteQuestion error = %v, want ErrForbidden", err)
	}

	if _, err := lib.GetBank(ctx, w.bank.ID); err != nil {
		t.Errorf("reads stay open to other users: %v", err)
	}
}

func TestUpdateQuestion_MergesFields(t *testing.T) {
	w := newWorld(t)
	lib := NewLibrary(w.store, discard)
	ctx := context.Background()

	updated, err := lib.UpdateQuestion(ctx, w.owner.ID, w.q1.ID, question.Patch{Answer: []byte(`"D"`)})
	if err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}
	if updated.Content != "Q1" || updated.Answer.Label() != "D" {
		t.Errorf("unexpected question after update: %+v", updated)
	}

	stored, _ := lib.GetQuestion(ctx, w.q1.ID)
	if stored.Answer.Label() != "D" {
		t.Errorf("stored answer = %v, want D", stored.Answer)
	}

	if _, err := lib.UpdateQuestion(ctx, w.owner.ID, w.q1.ID, question.Patch{Answer: []byte(`"Z"`)}); !errors.Is(err, question.ErrInvalidAnswer) {
		t.Errorf("unknown label error = %v, want ErrInvalidAnswer", err)
	}
}

func TestDeleteQuestion_CascadesAndDecrements(t *testing.T) {
	w := newWorld(t)
	lib := NewLibrary(w.store, discard)
	ctx := context.Background()

	if _, err := w.wrongs.Record(ctx, w.owner.ID, w.q1.ID, question.Single("A")); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := lib.DeleteQuestion(ctx, w.owner.ID, w.q1.ID); err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}

	entries, _ := w.wrongs.List(ctx, w.owner.ID)
	if len(entries) != 0 {
		t.Errorf("expected wrong questions removed with the question, got %d", len(entries))
	}
	bank, _ := lib.GetBank(ctx, w.bank.ID)
	if bank.QuestionCount != 2 {
		t.Errorf("QuestionCount = %d, want 2", bank.QuestionCount)
	}
}

func TestDeleteBank_Cascades(t *testing.T) {
	w := newWorld(t)
	lib := NewLibrary(w.store, discard)
	ctx := context.Background()

	if _, err := w.wrongs.Record(ctx, w.owner.ID, w.q3.ID, question.TrueFalse(false)); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := lib.DeleteBank(ctx, w.owner.ID, w.bank.ID); err != nil {
		t.Fatalf("DeleteBank: %v", err)
	}

	if _, err := lib.GetQuestion(ctx, w.q3.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("question survived its bank: %v", err)
	}
	stats, _ := w.wrongs.Stats(ctx, w.owner.ID)
	if stats.Total != 0 || len(stats.Banks) != 0 {
		t.Errorf("stats after bank deletion = %+v", stats)
	}
}

func TestExportBank(t *testing.T) {
	w := newWorld(t)
	lib := NewLibrary(w.store, discard)

	export, err := lib.ExportBank(context.Background(), w.bank.ID)
	if err != nil {
		t.Fatalf("ExportBank: %v", err)
	}
	if export.Bank.ID != w.bank.ID || len(export.Questions) != 3 {
		t.Errorf("unexpected export: bank %s, %d questions", export.Bank.ID, len(export.Questions))
	}
	if export.Questions[0].ID != w.q1.ID {
		t.Errorf("export should keep bank order")
	}
}

func TestCreatorNames(t *testing.T) {
	w := newWorld(t)
	lib := NewLibrary(w.store, discard)
	ctx := context.Background()
	stranger := newStranger(t, w)

	theirs, err := lib.CreateBank(ctx, stranger.ID, "Theirs", "", true)
	if err != nil {
		t.Fatalf("CreateBank: %v", err)
	}
	orphan, _ := questionbank.New("Orphan", "", true, "0123456789abcdef01234567")

	names, err := lib.CreatorNames(ctx, w.bank, theirs, w.bank, orphan)
	if err != nil {
		t.Fatalf("CreatorNames: %v", err)
	}
	if len(names) != 2 || names[w.owner.ID] != "U1" || names[stranger.ID] != "stranger" {
		t.Errorf("names = %v", names)
	}

	empty, err := lib.CreatorNames(ctx)
	if err != nil || len(empty) != 0 {
		t.Errorf("no banks: names = %v, err = %v", empty, err)
	}
}
