package manifest

import (
	"github.com/arthur-debert/stemdex/pkg/logging"
	"github.com/arthur-debert/stemdex/pkg/natsort"
	"github.com/arthur-debert/stemdex/pkg/stems"
	"github.com/arthur-debert/stemdex/pkg/types"
)

// Builder derives a pack's manifest from its directory listing.
type Builder struct {
	set     stems.Set
	matcher *stems.Matcher
}

// NewBuilder creates a Builder for the given stem set.
func NewBuilder(filesystem types.FS, set stems.Set) *Builder {
	return &Builder{
		set:     set,
		matcher: stems.NewMatcher(filesystem, set),
	}
}

// Build lists the pack directory once and, for each stem in set order, adds
// the naturally sorted loop files. Stems without files are omitted; a pack
// with no loop files at all yields an empty manifest.
func (b *Builder) Build(pack types.Pack) (*Manifest, error) {
	logger := logging.GetLogger("manifest.builder").With().
		Str("pack", pack.Name).
		Logger()

	entries, err := b.matcher.List(pack.Path)
	if err != nil {
		return nil, err
	}

	m := New()
	for _, stem := range b.set.Names() {
		files := b.matcher.MatchEntries(entries, stem)
		if len(files) == 0 {
			logger.Trace().
				Str("stem", stem).
				Str("pattern", b.set.Pattern(stem)).
				Msg("No loop files for stem")
			continue
		}
		natsort.Sort(files)
		m.Add(stem, files)
	}

	logger.Debug().
		Strs("stems", m.Stems()).
		Int("files", m.FileCount()).
		Msg("Built manifest")
	return m, nil
}
