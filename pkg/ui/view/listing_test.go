package view

import (
	"testing"

	"github.com/arthur-debert/stemdex/pkg/core"
	"github.com/arthur-debert/stemdex/pkg/errors"
	"github.com/arthur-debert/stemdex/pkg/manifest"
	"github.com/arthur-debert/stemdex/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResult(t *testing.T) {
	m := manifest.New()
	m.Add("drums", []string{"drums_loop_1.ogg", "drums_loop_2.ogg"})
	m.Add("melody", []string{"melody_loop_1.ogg"})

	result := &core.Result{Packs: []core.PackResult{
		{
			Pack:         types.Pack{Name: "lofi", Path: "/packs/lofi"},
			ManifestPath: "/packs/lofi/manifest.json",
			Manifest:     m,
			Status:       core.StatusListed,
		},
		{
			Pack:         types.Pack{Name: "locked", Path: "/packs/locked"},
			ManifestPath: "/packs/locked/manifest.json",
			Status:       core.StatusFailed,
			Err:          errors.New(errors.ErrPackAccess, "cannot read pack directory"),
		},
	}}

	listing := FromResult(result, []string{"drums", "bass", "melody"})

	assert.Equal(t, []string{"drums", "bass", "melody"}, listing.StemNames)
	require.Len(t, listing.Packs, 2)

	lofi := listing.Packs[0]
	assert.Equal(t, "lofi", lofi.Name)
	assert.Equal(t, []StemCount{
		{Stem: "drums", Files: 2},
		{Stem: "bass", Files: 0},
		{Stem: "melody", Files: 1},
	}, lofi.Stems)
	assert.Equal(t, 3, lofi.Total)
	assert.Empty(t, lofi.Error)

	locked := listing.Packs[1]
	assert.Empty(t, locked.Stems)
	assert.Contains(t, locked.Error, "PACK_ACCESS")

	failed := listing.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "locked", failed[0].Name)
}

func TestFromResult_Nil(t *testing.T) {
	listing := FromResult(nil, []string{"drums"})
	assert.Empty(t, listing.Packs)
	assert.Empty(t, listing.Failed())
}
