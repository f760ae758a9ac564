package core

import (
	"bytes"
	"fmt"

	"github.com/arthur-debert/stemdex/pkg/errors"
	"github.com/arthur-debert/stemdex/pkg/internal/hashutil"
	"github.com/arthur-debert/stemdex/pkg/logging"
	"github.com/arthur-debert/stemdex/pkg/manifest"
	"github.com/arthur-debert/stemdex/pkg/types"
)

// Check rebuilds every selected manifest in memory and compares it byte for
// byte with the file on disk. Nothing is written.
func Check(opts Options) (*Result, error) {
	logger := logging.GetLogger("core.check")
	done := logging.LogOperationStart(logger, "check")
	defer done()

	r, err := prepare(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, pack := range r.packs {
		pr := r.checkPack(pack)
		result.Packs = append(result.Packs, pr)

		if pr.Err != nil {
			logger.Error().Err(pr.Err).Str("pack", pack.Name).Msg("Failed to check manifest")
		}
		fmt.Fprintf(r.out, "%-7s %s\n", pr.Status, pr.ManifestPath)
	}

	logger.Info().
		Int("packs", len(result.Packs)).
		Int("stale", len(result.WithStatus(StatusStale))).
		Int("missing", len(result.WithStatus(StatusMissing))).
		Msg("Check completed")
	return result, nil
}

func (r *run) checkPack(pack types.Pack) PackResult {
	pr := PackResult{Pack: pack, ManifestPath: r.writer.Path(pack)}

	m, err := r.builder.Build(pack)
	if err != nil {
		pr.Status, pr.Err = StatusFailed, err
		return pr
	}
	pr.Manifest = m

	want, err := manifest.Encode(m)
	if err != nil {
		pr.Status, pr.Err = StatusFailed, err
		return pr
	}

	exists, err := pack.FileExists(r.fs, r.writer.Filename())
	if err != nil {
		pr.Status, pr.Err = StatusFailed, errors.Wrap(err, errors.ErrManifestRead, "cannot access manifest")
		return pr
	}
	if !exists {
		pr.Status = StatusMissing
		return pr
	}

	_, got, err := r.writer.Read(pack)
	if err != nil && got == nil {
		pr.Status, pr.Err = StatusFailed, err
		return pr
	}

	// an unparsable manifest is simply stale
	if bytes.Equal(got, want) {
		pr.Status = StatusOK
		return pr
	}
	pr.Status = StatusStale
	logger := logging.GetLogger("core.check")
	logger.Debug().
		Str("pack", pack.Name).
		Str("onDisk", hashutil.Checksum(got)).
		Str("expected", hashutil.Checksum(want)).
		Msg("Manifest is stale")
	return pr
}
