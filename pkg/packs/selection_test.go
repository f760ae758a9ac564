package packs

import (
	"testing"

	"github.com/arthur-debert/stemdex/pkg/errors"
	"github.com/arthur-debert/stemdex/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPacks(t *testing.T) {
	all := []types.Pack{
		{Name: "jazz", Path: "/packs/jazz"},
		{Name: "lofi", Path: "/packs/lofi"},
		{Name: "trap", Path: "/packs/trap"},
	}

	tests := []struct {
		name     string
		selected []string
		want     []string
		wantErr  bool
		notFound []string
	}{
		{name: "no selection returns all", selected: nil, want: []string{"jazz", "lofi", "trap"}},
		{name: "subset sorted by name", selected: []string{"trap", "jazz"}, want: []string{"jazz", "trap"}},
		{name: "duplicates collapse", selected: []string{"lofi", "lofi"}, want: []string{"lofi"}},
		{name: "unknown pack", selected: []string{"lofi", "polka", "ska"}, wantErr: true, notFound: []string{"polka", "ska"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectPacks(all, tt.selected)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrPackNotFound))
				assert.Equal(t, tt.notFound, errors.GetErrorDetails(err)["notFound"])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, GetPackNames(got))
		})
	}
}

func TestNormalizePackNames(t *testing.T) {
	assert.Equal(t, "lofi", NormalizePackName("lofi/"))
	assert.Equal(t, "lofi", NormalizePackName("lofi//"))
	assert.Equal(t, "lofi", NormalizePackName("lofi"))
	assert.Equal(t, []string{"a", "b"}, NormalizePackNames([]string{"a/", "b"}))
}
