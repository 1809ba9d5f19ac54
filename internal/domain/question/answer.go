package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Answer is a tagged value whose shape depends on the question type:
// a bool for tf, one option label for single, a set of labels for multiple.
// The zero Answer means "no answer".
type Answer struct {
	kind   Type
	truth  bool
	label  string
	labels []string
}

func TrueFalse(v bool) Answer {
	return Answer{kind: TypeTrueFalse, truth: v}
}

func Single(label string) Answer {
	return Answer{kind: TypeSingle, label: label}
}

func Multiple(labels ...string) Answer {
	return Answer{kind: TypeMultiple, labels: slices.Clone(labels)}
}

func (a Answer) Type() Type { return a.kind }

func (a Answer) IsZero() bool { return a.kind == "" }

func (a Answer) Bool() bool { return a.truth }

func (a Answer) Label() string { return a.label }

func (a Answer) Labels() []string { return slices.Clone(a.labels) }

// Value returns the untagged representation used on the wire and in storage.
func (a Answer) Value() any {
	switch a.kind {
	case TypeTrueFalse:
		return a.truth
	case TypeSingle:
		return a.label
	case TypeMultiple:
		if a.labels == nil {
			return []string{}
		}
		return a.labels
	}
	return nil
}

func (a Answer) String() string {
	switch a.kind {
	case TypeTrueFalse:
		return fmt.Sprintf("%t", a.truth)
	case TypeSingle:
		return a.label
	case TypeMultiple:
		return fmt.Sprintf("%v", a.labels)
	}
	return "<none>"
}

func (a Answer) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Value())
}

// UnmarshalJSON infers the tag from the JSON kind; see InferAnswer.
func (a *Answer) UnmarshalJSON(b []byte) error {
	v, err := InferAnswer(b)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// DecodeAnswer parses the untagged JSON form of an answer for a question of
// type t. An absent or null value decodes to the zero Answer.
func DecodeAnswer(t Type, raw json.RawMessage) (Answer, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Answer{}, nil
	}

	switch t {
	case TypeTrueFalse:
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return Answer{}, fmt.Errorf("%w: tf answer must be a boolean", ErrInvalidAnswer)
		}
		return TrueFalse(v), nil
	case TypeSingle:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return Answer{}, fmt.Errorf("%w: single answer must be an option label", ErrInvalidAnswer)
		}
		return Single(v), nil
	case TypeMultiple:
		var v []string
		if err := json.Unmarshal(raw, &v); err != nil {
			return Answer{}, fmt.Errorf("%w: multiple answer must be a list of option labels", ErrInvalidAnswer)
		}
		if v == nil {
			v = []string{}
		}
		return Multiple(v...), nil
	}
	return Answer{}, fmt.Errorf("%w: unknown type %q", ErrInvalidQuestion, t)
}

// InferAnswer parses a stored answer whose question type is not at hand.
// The three shapes are disjoint, so the JSON kind alone selects the tag.
func InferAnswer(raw json.RawMessage) (Answer, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Answer{}, nil
	}
	switch raw[0] {
	case 't', 'f':
		return DecodeAnswer(TypeTrueFalse, raw)
	case '"':
		return DecodeAnswer(TypeSingle, raw)
	case '[':
		return DecodeAnswer(TypeMultiple, raw)
	case 'n':
		return DecodeAnswer(TypeSingle, raw)
	}
	return Answer{}, fmt.Errorf("%w: unrecognised answer %s", ErrInvalidAnswer, raw)
}
