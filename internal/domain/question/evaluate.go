package question

// Evaluate reports whether submitted is the correct answer to q.
//
// tf and single answers must be exactly equal (case-sensitive, untrimmed).
// multiple answers are compared as sets: order and repeated labels do not
// matter, and there is no partial credit. An answer tagged with a different
// type than the question is never correct.
func Evaluate(q Question, submitted Answer) bool {
	want := q.Answer
	if submitted.kind != q.Type || want.kind != q.Type {
		return false
	}

	switch q.Type {
	case TypeTrueFalse:
		return submitted.truth == want.truth
	case TypeSingle:
		return submitted.label == want.label
	case TypeMultiple:
		return sameLabels(submitted.labels, want.labels)
	}
	return false
}

func sameLabels(got, want []string) bool {
	gotSet := labelSet(got)
	wantSet := labelSet(want)
	if len(gotSet) != len(wantSet) {
		return false
	}
	for l := range gotSet {
		if _, ok := wantSet[l]; !ok {
			return false
		}
	}
	return true
}

func labelSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}
