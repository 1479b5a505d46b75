// Package ordering sorts recipe listings by an enumerated sort key and
// direction.
package ordering

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/matt-dz/recipematch/internal/difficulty"
)

type Key int

const (
	// KeyBestMatch orders by match percentage, highest first. It is the
	// fallback for an empty or unrecognized sort key and ignores the
	// requested direction.
	KeyBestMatch Key = iota
	KeyMatch
	KeyDate
	KeyCookTime
	KeyDifficulty
)

func (k Key) String() string {
	switch k {
	case KeyMatch:
		return "match"
	case KeyDate:
		return "date"
	case KeyCookTime:
		return "cooktime"
	case KeyDifficulty:
		return "difficulty"
	default:
		return "bestmatch"
	}
}

type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// Fields holds the values a recipe can be ordered by.
type Fields struct {
	MatchPercentage int
	CreatedAt       time.Time
	CookTime        int32
	Difficulty      string
}

// Comparator returns a negative number when a sorts before b in ascending
// order, a positive number when after, and zero when they tie.
type Comparator func(a, b Fields) int

var comparators = map[Key]Comparator{
	KeyBestMatch:  compareMatch,
	KeyMatch:      compareMatch,
	KeyDate:       compareDate,
	KeyCookTime:   compareCookTime,
	KeyDifficulty: compareDifficulty,
}

func compareMatch(a, b Fields) int {
	return cmp.Compare(a.MatchPercentage, b.MatchPercentage)
}

func compareDate(a, b Fields) int {
	return a.CreatedAt.Compare(b.CreatedAt)
}

func compareCookTime(a, b Fields) int {
	return cmp.Compare(a.CookTime, b.CookTime)
}

func compareDifficulty(a, b Fields) int {
	return cmp.Compare(difficulty.Rank(a.Difficulty), difficulty.Rank(b.Difficulty))
}

type Sort struct {
	Key   Key
	Order Order
}

// BestMatch sorts by match percentage, highest first.
var BestMatch = Sort{Key: KeyBestMatch, Order: Descending}

// ParseKey maps a case-insensitive sort key onto a Key. Unrecognized
// values map to KeyBestMatch.
func ParseKey(sortBy string) Key {
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case "match", "matchpercentage":
		return KeyMatch
	case "date":
		return KeyDate
	case "cooktime":
		return KeyCookTime
	case "difficulty":
		return KeyDifficulty
	default:
		return KeyBestMatch
	}
}

// ParseOrder maps a case-insensitive direction onto an Order. Anything
// other than "desc" or "descending" is ascending.
func ParseOrder(sortOrder string) Order {
	switch strings.ToLower(strings.TrimSpace(sortOrder)) {
	case "desc", "descending":
		return Descending
	default:
		return Ascending
	}
}

// Parse builds a Sort from raw query values. A missing or unrecognized
// sortBy yields BestMatch regardless of sortOrder.
func Parse(sortBy, sortOrder string) Sort {
	key := ParseKey(sortBy)
	if key == KeyBestMatch {
		return BestMatch
	}
	return Sort{Key: key, Order: ParseOrder(sortOrder)}
}

// Compare orders a relative to b under s.
func (s Sort) Compare(a, b Fields) int {
	if s.Key == KeyBestMatch {
		return -compareMatch(a, b)
	}

	// Unknown difficulties trail the known ones in both directions.
	if s.Key == KeyDifficulty {
		aKnown := difficulty.Parse(a.Difficulty).Known()
		bKnown := difficulty.Parse(b.Difficulty).Known()
		switch {
		case aKnown && !bKnown:
			return -1
		case !aKnown && bKnown:
			return 1
		}
	}

	c := comparators[s.Key](a, b)
	if s.Order == Descending {
		return -c
	}
	return c
}

// Apply stably sorts items in place. Items that compare equal keep their
// original relative order.
func Apply[T any](items []T, s Sort, fields func(T) Fields) {
	slices.SortStableFunc(items, func(a, b T) int {
		return s.Compare(fields(a), fields(b))
	})
}
