package question

import "encoding/json"

// Patch describes an update to an existing question. Empty type and content
// and nil options keep their current values; a nil answer or explanation keeps
// its current value.
type Patch struct {
	Type        Type
	Content     string
	Options     []Option
	Answer      json.RawMessage
	Explanation *string
}

// Apply merges p into q and re-validates the result. The answer is decoded
// against the effective type, so changing the type requires a new answer.
func (p Patch) Apply(q *Question) error {
	updated := *q
	if p.Type != "" {
		updated.Type = p.Type
	}
	if p.Content != "" {
		updated.Content = p.Content
	}
	if p.Options != nil {
		updated.Options = p.Options
	}
	if p.Explanation != nil {
		updated.Explanation = *p.Explanation
	}
	if len(p.Answer) > 0 {
		if !updated.Type.Valid() {
			return ErrInvalidQuestion
		}
		a, err := DecodeAnswer(updated.Type, p.Answer)
		if err != nil {
			return err
		}
		if !a.IsZero() {
			updated.Answer = a
		}
	}
	if updated.Type == TypeTrueFalse {
		updated.Options = nil
	}

	if err := updated.Validate(); err != nil {
		return err
	}
	*q = updated
	return nil
}
