package question_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/examprep/backend/internal/domain/question"
)

func TestDecodeAnswer(t *testing.T) {
	tests := []struct {
		name    string
		typ     question.Type
		raw     string
		want    question.Answer
		wantErr bool
	}{
		{"tf true", question.TypeTrueFalse, `true`, question.TrueFalse(true), false},
		{"tf false", question.TypeTrueFalse, `false`, question.TrueFalse(false), false},
		{"tf rejects string", question.TypeTrueFalse, `"true"`, question.Answer{}, true},
		{"single label", question.TypeSingle, `"B"`, question.Single("B"), false},
		{"single rejects list", question.TypeSingle, `["B"]`, question.Answer{}, true},
		{"multiple labels", question.TypeMultiple, `["A","C"]`, question.Multiple("A", "C"), false},
		{"multiple empty list", question.TypeMultiple, `[]`, question.Multiple(), false},
		{"multiple rejects string", question.TypeMultiple, `"A"`, question.Answer{}, true},
		{"null is unanswered", question.TypeSingle, `null`, question.Answer{}, false},
		{"empty is unanswered", question.TypeMultiple, ``, question.Answer{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := question.DecodeAnswer(tt.typ, json.RawMessage(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, question.ErrInvalidAnswer) {
					t.Fatalf("expected ErrInvalidAnswer, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Type() != tt.want.Type() || got.String() != tt.want.String() {
				t.Errorf("expected %v (%s), got %v (%s)", tt.want, tt.want.Type(), got, got.Type())
			}
		})
	}
}

func TestAnswer_MarshalJSON(t *testing.T) {
	tests := []struct {
		answer question.Answer
		want   string
	}{
		{question.TrueFalse(true), `true`},
		{question.Single("B"), `"B"`},
		{question.Multiple("A", "C"), `["A","C"]`},
		{question.Multiple(), `[]`},
		{question.Answer{}, `null`},
	}

	for _, tt := range tests {
		b, err := json.Marshal(tt.answer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != tt.want {
			t.Errorf("expected %s, got %s", tt.want, b)
		}
	}
}

func TestMultiple_CopiesLabels(t *testing.T) {
	labels := []string{"A", "B"}
	a := question.Multiple(labels...)
	labels[0] = "Z"

	if a.Labels()[0] != "A" {
		t.Error("expected answer to keep its own copy of the labels")
	}
}

func TestInferAnswer(t *testing.T) {
	for _, a := range []question.Answer{
		question.TrueFalse(false),
		question.Single("D"),
		question.Multiple("B", "A"),
	} {
		raw, err := json.Marshal(a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := question.InferAnswer(raw)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", raw, err)
		}
		if got.Type() != a.Type() || got.String() != a.String() {
			t.Errorf("expected %v (%s), got %v (%s)", a, a.Type(), got, got.Type())
		}
	}

	if _, err := question.InferAnswer([]byte(`42`)); !errors.Is(err, question.ErrInvalidAnswer) {
		t.Errorf("expected ErrInvalidAnswer for a number, got %v", err)
	}
}

func TestAnswer_UnmarshalJSON(t *testing.T) {
	var got struct {
		Answer question.Answer `json:"answer"`
	}
	if err := json.Unmarshal([]byte(`{"answer":["C","A"]}`), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Answer.Type() != question.TypeMultiple || len(got.Answer.Labels()) != 2 {
		t.Errorf("expected multiple [C A], got %v (%s)", got.Answer, got.Answer.Type())
	}

	if err := json.Unmarshal([]byte(`{"answer":1}`), &got); !errors.Is(err, question.ErrInvalidAnswer) {
		t.Errorf("expected ErrInvalidAnswer, got %v", err)
	}
}
