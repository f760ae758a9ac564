package manifest

import (
	"io/fs"
	"os"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/stemdex/pkg/errors"
	"github.com/arthur-debert/stemdex/pkg/stems"
	"github.com/arthur-debert/stemdex/pkg/testutil"
	"github.com/arthur-debert/stemdex/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	tests := []struct {
		name      string
		files     []string
		wantStems []string
		wantFiles map[string][]string
	}{
		{
			name:      "stem isolation",
			files:     []string{"drums_loop_01.ogg", "bass_loop_01.ogg"},
			wantStems: []string{"drums", "bass"},
			wantFiles: map[string][]string{
				"drums": {"drums_loop_01.ogg"},
				"bass":  {"bass_loop_01.ogg"},
			},
		},
		{
			name:      "empty stems omitted",
			files:     []string{"melody_loop_01.ogg"},
			wantStems: []string{"melody"},
			wantFiles: map[string][]string{"melody": {"melody_loop_01.ogg"}},
		},
		{
			name:      "natural sort within stem",
			files:     []string{"chords_loop_10.ogg", "chords_loop_2.ogg", "chords_loop_1.ogg"},
			wantStems: []string{"chords"},
			wantFiles: map[string][]string{
				"chords": {"chords_loop_1.ogg", "chords_loop_2.ogg", "chords_loop_10.ogg"},
			},
		},
		{
			name:      "wrong extension and malformed prefix excluded",
			files:     []string{"drums_loop_01.wav", "drumsloop_01.ogg", "bass_loop_02.ogg"},
			wantStems: []string{"bass"},
			wantFiles: map[string][]string{"bass": {"bass_loop_02.ogg"}},
		},
		{
			name:      "no loop files",
			files:     []string{"readme.txt", "cover.png"},
			wantStems: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memFS := testutil.NewTestFS()
			pack := testutil.CreatePack(t, memFS, "/packs", "lofi", tt.files...)

			m, err := NewBuilder(memFS, stems.Default()).Build(pack)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStems, m.Stems())
			for stem, files := range tt.wantFiles {
				assert.Equal(t, files, m.Files(stem), "stem %s", stem)
			}
		})
	}
}

// dirEntries returns entries for names in exactly the given order
func dirEntries(t *testing.T, names ...string) []fs.DirEntry {
	t.Helper()
	mapFS := fstest.MapFS{}
	for _, name := range names {
		mapFS[name] = &fstest.MapFile{}
	}
	sorted, err := fs.ReadDir(mapFS, ".")
	require.NoError(t, err)

	byName := make(map[string]fs.DirEntry, len(sorted))
	for _, entry := range sorted {
		byName[entry.Name()] = entry
	}
	entries := make([]fs.DirEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, byName[name])
	}
	return entries
}

func TestBuilder_KeyOrderIgnoresListingOrder(t *testing.T) {
	mockFS := &testutil.MockFS{}
	mockFS.On("ReadDir", "/packs/lofi").Return(
		dirEntries(t, "melody_loop_1.ogg", "drums_loop_2.ogg", "bass_loop_1.ogg", "drums_loop_1.ogg"), nil)

	m, err := NewBuilder(mockFS, stems.Default()).Build(types.Pack{Name: "lofi", Path: "/packs/lofi"})
	require.NoError(t, err)

	assert.Equal(t, []string{"drums", "bass", "melody"}, m.Stems())
	assert.Equal(t, []string{"drums_loop_1.ogg", "drums_loop_2.ogg"}, m.Files("drums"))
	mockFS.AssertExpectations(t)
}

func TestBuilder_CustomStemSet(t *testing.T) {
	memFS := testutil.NewTestFS()
	pack := testutil.CreatePack(t, memFS, "/packs", "vox",
		"vocals_loop_1.wav", "drums_loop_1.wav", "drums_loop_1.ogg", "fx_loop_3.wav")

	set, err := stems.New([]string{"vocals", "fx"}, "wav")
	require.NoError(t, err)

	m, err := NewBuilder(memFS, set).Build(pack)
	require.NoError(t, err)
	assert.Equal(t, []string{"vocals", "fx"}, m.Stems())
	assert.Equal(t, 2, m.FileCount())
}

func TestBuilder_UnreadablePack(t *testing.T) {
	inner := testutil.NewTestFS()
	pack := testutil.CreatePack(t, inner, "/packs", "locked", "drums_loop_01.ogg")
	errFS := testutil.NewErrorFS(inner).FailReadDir(pack.Path, os.ErrPermission)

	_, err := NewBuilder(errFS, stems.Default()).Build(pack)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackAccess))
}
