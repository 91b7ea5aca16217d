package validation

import (
	"group-maker/domain"
	"group-maker/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateNames(t *testing.T) {
	tests := []struct {
		name     string
		names    domain.NameList
		expected error
	}{
		{"Nil list", nil, errors.ErrNoNames},
		{"Empty list", domain.NameList{}, errors.ErrNoNames},
		{"Single name", domain.NameList{"Alice"}, errors.ErrNotEnoughNames},
		{"Blank name", domain.NameList{"Alice", ""}, errors.ErrBlankName},
		{"Two names", domain.NameList{"Alice", "Bob"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNames(tt.names)
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expected)
			require.ErrorIs(t, err, errors.ErrInvalidInput)
		})
	}
}

func TestValidateNames_SingleNameMessage(t *testing.T) {
	err := ValidateNames(domain.ParseNames("Alice", ","))
	require.ErrorContains(t, err, "at least two names")
}

func TestParseGroupCount(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{" 4 ", 4, false},
		{"0", 0, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-2", 0, true},
		{"2.5", 0, true},
		{"99999999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseGroupCount(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrGroupCountNotNumber)
				require.ErrorIs(t, err, errors.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	five := domain.NameList{"A", "B", "C", "D", "E"}

	tests := []struct {
		name     string
		req      GroupRequest
		expected error
	}{
		{"Valid", GroupRequest{Names: five, Groups: 2}, nil},
		{"One group per name", GroupRequest{Names: five, Groups: 5}, nil},
		{"Zero groups", GroupRequest{Names: five, Groups: 0}, errors.ErrGroupCountTooSmall},
		{"One group", GroupRequest{Names: five, Groups: 1}, errors.ErrGroupCountTooSmall},
		{"Too many groups", GroupRequest{Names: five, Groups: 10}, errors.ErrTooManyGroups},
		{"Names checked first", GroupRequest{Names: domain.NameList{"A"}, Groups: 1}, errors.ErrNotEnoughNames},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestValidateRequest_TooManyGroupsCitesNameCount(t *testing.T) {
	err := ValidateRequest(GroupRequest{Names: domain.NameList{"A", "B", "C", "D", "E"}, Groups: 10})
	require.ErrorIs(t, err, errors.ErrTooManyGroups)
	require.ErrorContains(t, err, "10 requested, only 5 names")
}
