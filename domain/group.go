package domain

import (
	"fmt"
	"group-maker/errors"

	"github.com/samber/lo"
)

// Group is one team, in shuffle order.
type Group []string

// GroupSet is the result of a run: exactly GroupCount groups whose sizes differ by at most one.
type GroupSet []Group

// Sizes returns the number of names in each group.
func (s GroupSet) Sizes() []int {
	return lo.Map(s, func(g Group, _ int) int { return len(g) })
}

// Total returns the number of names across all groups.
func (s GroupSet) Total() int {
	return lo.Sum(s.Sizes())
}

// Distribute assigns the item at position i to bucket i mod k.
// Order inside a bucket follows the order of items.
func Distribute[T any](items []T, k int) ([][]T, error) {
	if k < 1 || k > len(items) {
		return nil, fmt.Errorf("%w: %d groups for %d items", errors.ErrInvalidGroupCount, k, len(items))
	}

	buckets := make([][]T, k)
	for i := range buckets {
		buckets[i] = make([]T, 0, (len(items)+k-1)/k)
	}
	for i, item := range items {
		buckets[i%k] = append(buckets[i%k], item)
	}
	return buckets, nil
}

// MakeGroups distributes an already shuffled NameList into k groups.
func MakeGroups(names NameList, k int) (GroupSet, error) {
	buckets, err := Distribute(names, k)
	if err != nil {
		return nil, err
	}
	return lo.Map(buckets, func(b []string, _ int) Group { return Group(b) }), nil
}
