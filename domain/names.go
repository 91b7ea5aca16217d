package domain

import (
	"strings"

	"github.com/samber/lo"
)

// DefaultSeparator splits the raw names input when no separator is configured.
const DefaultSeparator = ","

// NameList is the ordered list of participants typed by the user.
// Duplicates are kept: two people may share a first name.
type NameList []string

// ParseNames splits raw on sep, trims every token and drops the empty ones.
func ParseNames(raw, sep string) NameList {
	if sep == "" {
		sep = DefaultSeparator
	}
	tokens := lo.Map(strings.Split(raw, sep), func(token string, _ int) string {
		return strings.TrimSpace(token)
	})
	return lo.Compact(tokens)
}

// SuggestGroupCount returns the value pre-filled in the group count prompt.
// It starts from min(ceil(n/3), floor(n/2)) and never suggests fewer than 2
// groups when two are possible, since a single group is always rejected.
func SuggestGroupCount(n int) int {
	suggestion := min((n+2)/3, n/2)
	if n >= 2 && suggestion < 2 {
		return 2
	}
	return suggestion
}
