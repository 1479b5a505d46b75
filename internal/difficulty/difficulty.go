// Package difficulty maps free-text recipe difficulty labels onto a
// semantic ordering.
package difficulty

import "strings"

type Difficulty int

// Lexical order ("Easy" < "Hard" < "Medium") disagrees with these ranks, so
// sorting must always go through Rank.
const (
	Easy    Difficulty = 1
	Medium  Difficulty = 2
	Hard    Difficulty = 3
	Unknown Difficulty = 4
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Known reports whether d is one of the recognized labels.
func (d Difficulty) Known() bool {
	return d >= Easy && d <= Hard
}

// Parse converts a label to a Difficulty. Matching is case-insensitive and
// any unrecognized label, including the empty string, is Unknown.
func Parse(label string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "easy":
		return Easy
	case "medium":
		return Medium
	case "hard":
		return Hard
	default:
		return Unknown
	}
}

// Rank returns the ordinal rank of a label: 1 for easy, 2 for medium,
// 3 for hard and 4 for everything else.
func Rank(label string) int {
	return int(Parse(label))
}
