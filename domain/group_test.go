package domain

import (
	"group-maker/errors"
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestDistribute_RoundRobinOrder(t *testing.T) {
	groups, err := Distribute([]string{"a", "b", "c", "d"}, 2)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "c"}, {"b", "d"}}, groups)
}

func TestDistribute_Invariants(t *testing.T) {
	for n := 1; n <= 25; n++ {
		items := lo.Range(n)
		for k := 1; k <= n; k++ {
			groups, err := Distribute(items, k)
			require.NoError(t, err)
			require.Len(t, groups, k)

			sizes := lo.Map(groups, func(g []int, _ int) int { return len(g) })
			require.Equal(t, n, lo.Sum(sizes))
			require.LessOrEqual(t, lo.Max(sizes)-lo.Min(sizes), 1, "n=%d k=%d", n, k)
			require.ElementsMatch(t, items, lo.Flatten(groups))

			for _, g := range groups {
				require.True(t, slices.IsSorted(g), "group order must follow input order")
			}
		}
	}
}

func TestDistribute_OneItemPerGroup(t *testing.T) {
	groups, err := Distribute([]string{"x", "y", "z"}, 3)
	require.NoError(t, err)
	for _, g := range groups {
		require.Len(t, g, 1)
	}
}

func TestDistribute_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		k     int
	}{
		{"Zero groups", []string{"a", "b"}, 0},
		{"Negative groups", []string{"a", "b"}, -1},
		{"More groups than items", []string{"a", "b"}, 3},
		{"No items", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, err := Distribute(tt.items, tt.k)
			require.ErrorIs(t, err, errors.ErrInvalidGroupCount)
			require.Nil(t, groups)
		})
	}
}

func TestMakeGroups_SixNamesThreeGroups(t *testing.T) {
	req := require.New(t)
	names := ParseNames("Alice, Bob, Carol, Dave, Eve, Frank", ",")
	shuffled := Shuffle(seeded(11), names)

	set, err := MakeGroups(shuffled, 3)

	req.NoError(err)
	req.Len(set, 3)
	req.Equal([]int{2, 2, 2}, set.Sizes())
	req.Equal(6, set.Total())
	req.ElementsMatch([]string(names), lo.Flatten(lo.Map(set, func(g Group, _ int) []string { return g })))
}

func TestMakeGroups_TwoNamesTwoGroups(t *testing.T) {
	set, err := MakeGroups(NameList{"Alice", "Bob"}, 2)
	require.NoError(t, err)
	require.Equal(t, GroupSet{{"Alice"}, {"Bob"}}, set)
}
