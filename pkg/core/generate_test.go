package core

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/stemdex/pkg/config"
	"github.com/arthur-debert/stemdex/pkg/errors"
	"github.com/arthur-debert/stemdex/pkg/filesystem"
	"github.com/arthur-debert/stemdex/pkg/testutil"
	"github.com/arthur-debert/stemdex/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPacks(t *testing.T) types.FS {
	t.Helper()
	fs := testutil.NewTestFS()
	testutil.CreatePack(t, fs, "/packs", "lofi",
		"drums_loop_10.ogg", "drums_loop_2.ogg", "drums_loop_1.ogg", "bass_loop_01.ogg", "cover.png")
	testutil.CreatePack(t, fs, "/packs", "ambient", "melody_loop_01.ogg")
	testutil.CreatePack(t, fs, "/packs", "empty")
	return fs
}

func TestGenerate(t *testing.T) {
	fs := setupPacks(t)
	var out bytes.Buffer

	result, err := Generate(Options{PacksRoot: "/packs", FileSystem: fs, Out: &out})
	require.NoError(t, err)
	require.NoError(t, result.Err())

	assert.Equal(t,
		"Wrote /packs/ambient/manifest.json (1 stem files listed)\n"+
			"Wrote /packs/empty/manifest.json (0 stem files listed)\n"+
			"Wrote /packs/lofi/manifest.json (4 stem files listed)\n",
		out.String())

	assert.Equal(t, `{
  "drums": [
    "drums_loop_1.ogg",
    "drums_loop_2.ogg",
    "drums_loop_10.ogg"
  ],
  "bass": [
    "bass_loop_01.ogg"
  ]
}
`, testutil.ReadString(t, fs, "/packs/lofi/manifest.json"))
	assert.Equal(t, "{\n  \"melody\": [\n    \"melody_loop_01.ogg\"\n  ]\n}\n",
		testutil.ReadString(t, fs, "/packs/ambient/manifest.json"))
	assert.Equal(t, "{}\n", testutil.ReadString(t, fs, "/packs/empty/manifest.json"))

	require.Len(t, result.Packs, 3)
	for _, p := range result.Packs {
		assert.Equal(t, StatusWritten, p.Status)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	fs := setupPacks(t)

	_, err := Generate(Options{PacksRoot: "/packs", FileSystem: fs})
	require.NoError(t, err)
	first := testutil.ReadString(t, fs, "/packs/lofi/manifest.json")

	_, err = Generate(Options{PacksRoot: "/packs", FileSystem: fs})
	require.NoError(t, err)
	assert.Equal(t, first, testutil.ReadString(t, fs, "/packs/lofi/manifest.json"))
}

func TestGenerate_MissingRootIsFatal(t *testing.T) {
	var out bytes.Buffer
	result, err := Generate(Options{PacksRoot: "/packs", FileSystem: testutil.NewTestFS(), Out: &out})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPacksRootNotFound))
	assert.Empty(t, out.String())
}

func TestGenerate_PerPackFailuresDoNotStopTheRun(t *testing.T) {
	inner := setupPacks(t)
	fs := testutil.NewErrorFS(inner).
		FailReadDir("/packs/ambient", os.ErrPermission).
		FailWrite("/packs/empty/manifest.json", os.ErrPermission)
	var out bytes.Buffer

	result, err := Generate(Options{PacksRoot: "/packs", FileSystem: fs, Out: &out})
	require.NoError(t, err)

	assert.Equal(t, "Wrote /packs/lofi/manifest.json (4 stem files listed)\n", out.String())

	failed := result.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, "ambient", failed[0].Pack.Name)
	assert.True(t, errors.IsErrorCode(failed[0].Err, errors.ErrPackAccess))
	assert.Equal(t, "empty", failed[1].Pack.Name)
	assert.True(t, errors.IsErrorCode(failed[1].Err, errors.ErrManifestWrite))

	runErr := result.Err()
	require.Error(t, runErr)
	assert.True(t, errors.IsErrorCode(runErr, errors.ErrPacksFailed))
	assert.Equal(t, []string{"ambient", "empty"}, errors.GetErrorDetails(runErr)["packs"])

	// the healthy pack was still written
	assert.Contains(t, testutil.ReadString(t, inner, "/packs/lofi/manifest.json"), "drums_loop_10.ogg")
}

func TestGenerate_DryRun(t *testing.T) {
	fs := setupPacks(t)
	var out bytes.Buffer

	result, err := Generate(Options{PacksRoot: "/packs", FileSystem: fs, DryRun: true, Out: &out})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.True(t, strings.HasPrefix(out.String(), "Would write /packs/ambient/manifest.json (1 stem files listed)\n"))

	_, err = fs.Stat("/packs/lofi/manifest.json")
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_SelectedPacks(t *testing.T) {
	fs := setupPacks(t)
	var out bytes.Buffer

	_, err := Generate(Options{PacksRoot: "/packs", PackNames: []string{"lofi/"}, FileSystem: fs, Out: &out})
	require.NoError(t, err)
	assert.Equal(t, "Wrote /packs/lofi/manifest.json (4 stem files listed)\n", out.String())

	_, err = Generate(Options{PacksRoot: "/packs", PackNames: []string{"polka"}, FileSystem: fs})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackNotFound))
}

func TestGenerate_CustomConfig(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreatePack(t, fs, "/packs", "vox", "vocals_loop_2.wav", "vocals_loop_1.wav", "drums_loop_1.ogg")
	testutil.CreatePack(t, fs, "/packs", "wip-idea", "vocals_loop_1.wav")

	cfg := config.Default()
	cfg.Stems.Names = []string{"vocals"}
	cfg.Stems.Extension = "wav"
	cfg.Manifest.Filename = "index.json"
	cfg.Packs.Ignore = []string{"wip-*"}

	var out bytes.Buffer
	_, err := Generate(Options{PacksRoot: "/packs", Config: cfg, FileSystem: fs, Out: &out})
	require.NoError(t, err)

	assert.Equal(t, "Wrote /packs/vox/index.json (2 stem files listed)\n", out.String())
	assert.Equal(t, "{\n  \"vocals\": [\n    \"vocals_loop_1.wav\",\n    \"vocals_loop_2.wav\"\n  ]\n}\n",
		testutil.ReadString(t, fs, "/packs/vox/index.json"))
}

func TestGenerate_InvalidStemConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Stems.Names = nil

	_, err := Generate(Options{PacksRoot: "/packs", Config: cfg, FileSystem: setupPacks(t)})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestGenerate_OnDisk(t *testing.T) {
	root := filepath.Join(t.TempDir(), "packs")
	pack := filepath.Join(root, "lofi")
	require.NoError(t, os.MkdirAll(pack, 0755))
	for _, f := range []string{"melody_loop_1.ogg", "drums_loop_1.ogg", "bass_loop_1.ogg"} {
		require.NoError(t, os.WriteFile(filepath.Join(pack, f), nil, 0644))
	}

	var out bytes.Buffer
	_, err := Generate(Options{PacksRoot: root, FileSystem: filesystem.NewOS(), Out: &out})
	require.NoError(t, err)

	manifestPath := filepath.Join(pack, "manifest.json")
	assert.Equal(t, "Wrote "+manifestPath+" (3 stem files listed)\n", out.String())

	data, err := os.ReadFile(manifestPath)
	require.NoError(t, err)
	assert.Equal(t, `{
  "drums": [
    "drums_loop_1.ogg"
  ],
  "bass": [
    "bass_loop_1.ogg"
  ],
  "melody": [
    "melody_loop_1.ogg"
  ]
}
`, string(data))
}
