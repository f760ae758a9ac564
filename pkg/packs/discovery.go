package packs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/stemdex/pkg/errors"
	"github.com/arthur-debert/stemdex/pkg/logging"
	"github.com/arthur-debert/stemdex/pkg/types"
)

// Options controls which directories count as packs
type Options struct {
	// Ignore holds glob patterns matched against pack names
	Ignore []string

	// IgnoreFile is a marker file name; a pack containing it is skipped
	IgnoreFile string
}

// ValidateRoot checks that the packs root exists and is a directory. Every
// other operation depends on this, so its failure is fatal to a run.
func ValidateRoot(root string, filesystem types.FS) error {
	if root == "" {
		return errors.New(errors.ErrInvalidInput, "packs root cannot be empty")
	}

	info, err := filesystem.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrPacksRootNotFound, "no packs folder found at %s", root).
				WithDetail("path", root)
		}
		return errors.Wrap(err, errors.ErrPackAccess, "cannot access packs root").
			WithDetail("path", root)
	}

	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "packs root %s is not a directory", root).
			WithDetail("path", root)
	}
	return nil
}

// Discover returns the packs under root sorted by name (plain string order).
func Discover(root string, filesystem types.FS, opts Options) ([]types.Pack, error) {
	logger := logging.GetLogger("packs.discovery")
	logger.Trace().Str("root", root).Msg("Discovering packs")

	if err := ValidateRoot(root, filesystem); err != nil {
		return nil, err
	}

	entries, err := filesystem.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrPackAccess, "cannot read packs root").
			WithDetail("path", root)
	}

	checker := NewIgnoreChecker(filesystem, opts)

	var packs []types.Pack
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(root, name)

		if !isDir(filesystem, path, entry) {
			continue
		}

		if checker.ShouldIgnore(name, path) {
			continue
		}

		packs = append(packs, types.Pack{Name: name, Path: path})
		logger.Trace().Str("path", path).Msg("Found pack")
	}

	// Sort for consistent ordering
	sort.Slice(packs, func(i, j int) bool {
		return packs[i].Name < packs[j].Name
	})

	logger.Info().Int("count", len(packs)).Msg("Discovered packs")
	return packs, nil
}

// isDir follows symlinks so a linked pack directory still counts
func isDir(filesystem types.FS, path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := filesystem.Stat(path)
	return err == nil && info.IsDir()
}

// DiscoverAndSelect discovers packs under root and, if names is not empty,
// keeps only the named ones. Names are normalized first.
func DiscoverAndSelect(root string, names []string, filesystem types.FS, opts Options) ([]types.Pack, error) {
	all, err := Discover(root, filesystem, opts)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return all, nil
	}
	return SelectPacks(all, NormalizePackNames(names))
}
