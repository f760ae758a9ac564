package stems

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/stemdex/pkg/errors"
)

// DefaultNames lists the recognized stems in manifest key order.
var DefaultNames = []string{"drums", "bass", "chords", "melody"}

// DefaultExtension is the audio extension loop files carry.
const DefaultExtension = "ogg"

// Set is the recognized stem configuration: stem names in manifest key
// order plus the single audio extension that is matched.
type Set struct {
	names     []string
	extension string
	patterns  map[string]*regexp.Regexp
}

// Default returns the drums, bass, chords, melody / ogg set.
func Default() Set {
	s, err := New(DefaultNames, DefaultExtension)
	if err != nil {
		panic(fmt.Sprintf("default stem set is invalid: %v", err))
	}
	return s
}

// New validates names and extension and returns a Set. A leading dot on
// the extension is dropped.
func New(names []string, extension string) (Set, error) {
	ext := strings.TrimPrefix(strings.TrimSpace(extension), ".")
	if ext == "" {
		return Set{}, errors.New(errors.ErrConfigValid, "stem file extension cannot be empty")
	}
	if len(names) == 0 {
		return Set{}, errors.New(errors.ErrConfigValid, "at least one stem is required")
	}

	s := Set{
		names:     make([]string, 0, len(names)),
		extension: ext,
		patterns:  make(map[string]*regexp.Regexp, len(names)),
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return Set{}, errors.New(errors.ErrConfigValid, "stem name cannot be empty")
		}
		if strings.ContainsAny(name, `/\`) {
			return Set{}, errors.Newf(errors.ErrConfigValid, "stem name %q contains a path separator", name).
				WithDetail("stem", name)
		}
		if _, dup := s.patterns[name]; dup {
			return Set{}, errors.Newf(errors.ErrConfigValid, "stem %q listed more than once", name).
				WithDetail("stem", name)
		}
		s.names = append(s.names, name)
		s.patterns[name] = regexp.MustCompile(
			"^" + regexp.QuoteMeta(name) + `_loop_[0-9]+\.` + regexp.QuoteMeta(ext) + "$")
	}
	return s, nil
}

// Names returns the stems in manifest key order.
func (s Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Extension returns the matched audio extension without a leading dot.
func (s Set) Extension() string {
	return s.extension
}

// Matches reports whether filename is a loop file of stem.
func (s Set) Matches(stem, filename string) bool {
	p, ok := s.patterns[stem]
	if !ok {
		return false
	}
	return p.MatchString(filename)
}

// Pattern returns the anchored regexp loop files of stem must match, or ""
// when stem is not in the set.
func (s Set) Pattern(stem string) string {
	p, ok := s.patterns[stem]
	if !ok {
		return ""
	}
	return p.String()
}
