package question_test

import (
	"testing"

	"github.com/examprep/backend/internal/domain/question"
)

var abcd = []question.Option{
	{Label: "A", Content: "one"},
	{Label: "B", Content: "two"},
	{Label: "C", Content: "three"},
	{Label: "D", Content: "four"},
}

func mustQuestion(t *testing.T, typ question.Type, answer question.Answer) question.Question {
	t.Helper()
	var options []question.Option
	if typ != question.TypeTrueFalse {
		options = abcd
	}
	q, err := question.New("bank", typ, "content", options, answer, "")
	if err != nil {
		t.Fatalf("failed to build question: %v", err)
	}
	return *q
}

func TestEvaluate(t *testing.T) {
	q1 := mustQuestion(t, question.TypeSingle, question.Single("B"))
	q2 := mustQuestion(t, question.TypeMultiple, question.Multiple("A", "C"))
	q3 := mustQuestion(t, question.TypeTrueFalse, question.TrueFalse(true))

	tests := []struct {
		name      string
		q         question.Question
		submitted question.Answer
		want      bool
	}{
		{"single correct", q1, question.Single("B"), true},
		{"single wrong", q1, question.Single("A"), false},
		{"single is case-sensitive", q1, question.Single("b"), false},
		{"single is not trimmed", q1, question.Single(" B"), false},
		{"multiple same order", q2, question.Multiple("A", "C"), true},
		{"multiple permuted", q2, question.Multiple("C", "A"), true},
		{"multiple missing one", q2, question.Multiple("A"), false},
		{"multiple extra one", q2, question.Multiple("A", "C", "B"), false},
		{"multiple same size wrong member", q2, question.Multiple("A", "B"), false},
		{"multiple empty", q2, question.Multiple(), false},
		{"multiple repeated label", q2, question.Multiple("A", "A"), false},
		{"multiple repeated but complete", q2, question.Multiple("C", "A", "C"), true},
		{"tf correct", q3, question.TrueFalse(true), true},
		{"tf wrong", q3, question.TrueFalse(false), false},
		{"string true is not boolean true", q3, question.Single("true"), false},
		{"single tag on multiple question", q2, question.Single("A"), false},
		{"zero answer", q1, question.Answer{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := question.Evaluate(tt.q, tt.submitted); got != tt.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.submitted, got, tt.want)
			}
		})
	}
}

func TestEvaluate_EmptyCorrectSet(t *testing.T) {
	// Cannot be built through New; the equality rule still has to hold.
	q := question.Question{Type: question.TypeMultiple, Answer: question.Multiple()}

	if !question.Evaluate(q, question.Multiple()) {
		t.Error("expected empty submission to match empty correct set")
	}
	if question.Evaluate(q, question.Multiple("A")) {
		t.Error("expected non-empty submission to miss empty correct set")
	}
}

func TestEvaluate_OrderNeverMatters(t *testing.T) {
	q := mustQuestion(t, question.TypeMultiple, question.Multiple("A", "B", "D"))

	perms := [][]string{
		{"A", "B", "D"}, {"A", "D", "B"}, {"B", "A", "D"},
		{"B", "D", "A"}, {"D", "A", "B"}, {"D", "B", "A"},
	}
	for _, p := range perms {
		if !question.Evaluate(q, question.Multiple(p...)) {
			t.Errorf("expected permutation %v to be correct", p)
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	q := mustQuestion(t, question.TypeMultiple, question.Multiple("A", "C"))
	submitted := question.Multiple("C", "A")

	first := question.Evaluate(q, submitted)
	for i := 0; i < 100; i++ {
		if question.Evaluate(q, submitted) != first {
			t.Fatal("expected the same verdict on every call")
		}
	}
}
