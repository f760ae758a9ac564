package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stemdex/pkg/types"
	"github.com/stretchr/testify/require"
)

// CreatePack creates root/name with one empty file per entry in files.
func CreatePack(t *testing.T, fs types.FS, root, name string, files ...string) types.Pack {
	t.Helper()

	packPath := filepath.Join(root, name)
	require.NoError(t, fs.MkdirAll(packPath, 0755))
	for _, f := range files {
		require.NoError(t, fs.WriteFile(filepath.Join(packPath, f), []byte{}, 0644))
	}

	return types.Pack{Name: name, Path: packPath}
}

// ReadString reads a file and fails the test if it cannot.
func ReadString(t *testing.T, fs types.FS, path string) string {
	t.Helper()

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
