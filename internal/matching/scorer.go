package matching

import "slices"

// IDSet is a set of catalog ids.
type IDSet map[int64]struct{}

func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members of s in ascending order.
func (s IDSet) Sorted() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Score is the outcome of comparing one recipe's ingredients against the
// ingredients a user has available.
type Score struct {
	Matched       []int64
	Missing       []int64
	TotalRequired int
	Percentage    int
}

func (s Score) MatchedCount() int {
	return len(s.Matched)
}

// ScoreRecipe partitions required into the ids present in available and
// the ids missing from it. required is treated as a set: repeated ids are
// counted once and first-seen order is kept.
func ScoreRecipe(required []int64, available IDSet) Score {
	unique := dedupe(required)
	score := Score{
		Matched:       make([]int64, 0, len(unique)),
		Missing:       make([]int64, 0, len(unique)),
		TotalRequired: len(unique),
	}

	if len(available) == 0 {
		score.Missing = append(score.Missing, unique...)
		return score
	}

	for _, id := range unique {
		if available.Contains(id) {
			score.Matched = append(score.Matched, id)
		} else {
			score.Missing = append(score.Missing, id)
		}
	}
	score.Percentage = Percentage(len(score.Matched), score.TotalRequired)
	return score
}

// Percentage returns matched/total as a whole percentage rounded half up,
// or 0 when total is not positive.
func Percentage(matched, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*matched + total) / (2 * total)
}

func dedupe(ids []int64) []int64 {
	seen := make(IDSet, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen.Contains(id) {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
