package types

import (
	"os"
	"path/filepath"
)

// Pack represents a directory of loop files under the packs root
type Pack struct {
	// Name is the directory name, used as the pack's identity
	Name string

	// Path is the path to the pack directory
	Path string
}

// GetFilePath returns the full path to a file within the pack
func (p *Pack) GetFilePath(filename string) string {
	return filepath.Join(p.Path, filename)
}

// FileExists checks if a file exists within the pack
func (p *Pack) FileExists(fs FS, filename string) (bool, error) {
	_, err := fs.Stat(p.GetFilePath(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		// permission denied and friends are real errors
		return false, err
	}
	return true, nil
}
