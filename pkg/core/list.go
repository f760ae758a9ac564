package core

import (
	"github.com/arthur-debert/stemdex/pkg/logging"
)

// List builds the manifest of every selected pack without writing anything.
// Results carry the manifests so callers can render per-stem counts.
func List(opts Options) (*Result, error) {
	logger := logging.GetLogger("core.list")
	logger.Debug().Str("command", "List").Msg("Executing command")

	r, err := prepare(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, pack := range r.packs {
		pr := PackResult{Pack: pack, ManifestPath: r.writer.Path(pack)}
		m, err := r.builder.Build(pack)
		if err != nil {
			logger.Error().Err(err).Str("pack", pack.Name).Msg("Failed to list pack")
			pr.Status, pr.Err = StatusFailed, err
		} else {
			pr.Status, pr.Manifest = StatusListed, m
		}
		result.Packs = append(result.Packs, pr)
	}

	logger.Info().Int("packCount", len(result.Packs)).Msg("Command finished")
	return result, nil
}
