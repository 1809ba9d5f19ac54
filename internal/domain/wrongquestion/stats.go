package wrongquestion

import "github.com/examprep/backend/internal/domain/question"

// Summary is the store-independent part of a user's wrong-answer statistics.
type Summary struct {
	Total         int
	TypeBreakdown map[question.Type]int
	BankIDs       []string // distinct, first-seen order
}

// Aggregate counts entries by question type and collects the distinct banks
// they come from. Entries with a dangling question are skipped entirely, so
// Total counts resolved entries only and always equals the breakdown sum.
// A raw record count including dangling rows is len(entries).
func Aggregate(entries []Entry) Summary {
	s := Summary{
		TypeBreakdown: make(map[question.Type]int, len(question.Types)),
		BankIDs:       []string{},
	}
	for _, t := range question.Types {
		s.TypeBreakdown[t] = 0
	}

	seen := make(map[string]struct{})
	for _, e := range entries {
		if e.Question == nil {
			continue
		}
		s.Total++
		if _, ok := s.TypeBreakdown[e.Question.Type]; ok {
			s.TypeBreakdown[e.Question.Type]++
		}

		bankID := e.Question.BankID
		if bankID == "" {
			continue
		}
		if _, dup := seen[bankID]; !dup {
			seen[bankID] = struct{}{}
			s.BankIDs = append(s.BankIDs, bankID)
		}
	}
	return s
}

type BankRef struct {
	ID   string
	Name string
}

type Stats struct {
	Total         int
	TypeBreakdown map[question.Type]int
	Banks         []BankRef
}

// Resolve attaches bank names to a summary. Bank IDs missing from names
// belong to deleted banks and are dropped.
func Resolve(s Summary, names map[string]string) Stats {
	banks := make([]BankRef, 0, len(s.BankIDs))
	for _, bankID := range s.BankIDs {
		name, ok := names[bankID]
		if !ok {
			continue
		}
		banks = append(banks, BankRef{ID: bankID, Name: name})
	}
	return Stats{
		Total:         s.Total,
		TypeBreakdown: s.TypeBreakdown,
		Banks:         banks,
	}
}
