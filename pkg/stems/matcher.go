package stems

import (
	"io/fs"

	"github.com/arthur-debert/stemdex/pkg/errors"
	"github.com/arthur-debert/stemdex/pkg/logging"
	"github.com/arthur-debert/stemdex/pkg/types"
)

// Matcher finds loop files in a pack directory.
type Matcher struct {
	set Set
	fs  types.FS
}

// NewMatcher creates a Matcher over filesystem for set.
func NewMatcher(filesystem types.FS, set Set) *Matcher {
	return &Matcher{set: set, fs: filesystem}
}

// Match returns the names of the direct children of dir that are loop files
// of stem, in directory listing order. Subdirectories never match.
func (m *Matcher) Match(dir, stem string) ([]string, error) {
	entries, err := m.List(dir)
	if err != nil {
		return nil, err
	}
	return m.MatchEntries(entries, stem), nil
}

// List reads dir once so several stems can be matched against it.
func (m *Matcher) List(dir string) ([]fs.DirEntry, error) {
	entries, err := m.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrPackAccess, "cannot read pack directory").
			WithDetail("path", dir)
	}
	return entries, nil
}

// MatchEntries filters entries down to loop files of stem.
func (m *Matcher) MatchEntries(entries []fs.DirEntry, stem string) []string {
	logger := logging.GetLogger("stems.matcher")

	var matched []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if m.set.Matches(stem, name) {
			logger.Trace().Str("stem", stem).Str("file", name).Msg("Loop file matched")
			matched = append(matched, name)
		}
	}
	return matched
}
