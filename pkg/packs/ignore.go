package packs

import (
	"path/filepath"

	"github.com/arthur-debert/stemdex/pkg/logging"
	"github.com/arthur-debert/stemdex/pkg/types"
	"github.com/rs/zerolog"
)

// IgnoreChecker decides whether a discovered directory is skipped
type IgnoreChecker struct {
	fs     types.FS
	opts   Options
	logger zerolog.Logger
}

// NewIgnoreChecker creates a new IgnoreChecker instance
func NewIgnoreChecker(filesystem types.FS, opts Options) *IgnoreChecker {
	return &IgnoreChecker{
		fs:     filesystem,
		opts:   opts,
		logger: logging.GetLogger("packs.ignore"),
	}
}

// ShouldIgnore reports whether the pack name matches an ignore pattern or
// the directory holds the ignore marker file
func (ic *IgnoreChecker) ShouldIgnore(name, path string) bool {
	if pattern, ok := ic.matchesPattern(name); ok {
		ic.logger.Debug().
			Str("pack", name).
			Str("pattern", pattern).
			Msg("Pack ignored by pattern")
		return true
	}
	if ic.HasIgnoreFile(path) {
		ic.logger.Debug().
			Str("pack", name).
			Str("file", ic.opts.IgnoreFile).
			Msg("Pack ignored due to ignore file")
		return true
	}
	return false
}

// HasIgnoreFile checks if a directory contains the ignore marker file
func (ic *IgnoreChecker) HasIgnoreFile(dirPath string) bool {
	if ic.opts.IgnoreFile == "" {
		return false
	}
	_, err := ic.fs.Stat(filepath.Join(dirPath, ic.opts.IgnoreFile))
	return err == nil
}

func (ic *IgnoreChecker) matchesPattern(name string) (string, bool) {
	for _, pattern := range ic.opts.Ignore {
		if matched, _ := filepath.Match(pattern, name); matched {
			return pattern, true
		}
	}
	return "", false
}
