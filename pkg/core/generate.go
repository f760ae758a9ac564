package core

import (
	"fmt"

	"github.com/arthur-debert/stemdex/pkg/logging"
	"github.com/arthur-debert/stemdex/pkg/types"
)

// Generate builds and writes the manifest of every selected pack, printing
// "Wrote <path> (<n> stem files listed)" per pack.
func Generate(opts Options) (*Result, error) {
	logger := logging.GetLogger("core.generate")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	r, err := prepare(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{DryRun: opts.DryRun}
	for _, pack := range r.packs {
		pr := r.generatePack(pack)
		result.Packs = append(result.Packs, pr)

		if pr.Err != nil {
			logger.Error().
				Err(pr.Err).
				Str("pack", pack.Name).
				Msg("Failed to generate manifest, continuing with next pack")
			continue
		}

		verb := "Wrote"
		if opts.DryRun {
			verb = "Would write"
		}
		fmt.Fprintf(r.out, "%s %s (%d stem files listed)\n", verb, pr.ManifestPath, pr.FileCount())
	}

	logger.Info().
		Int("packs", len(result.Packs)).
		Int("failed", len(result.Failed())).
		Bool("dryRun", opts.DryRun).
		Msg("Generate completed")
	return result, nil
}

func (r *run) generatePack(pack types.Pack) PackResult {
	pr := PackResult{Pack: pack, ManifestPath: r.writer.Path(pack)}

	m, err := r.builder.Build(pack)
	if err != nil {
		pr.Status, pr.Err = StatusFailed, err
		return pr
	}
	pr.Manifest = m

	if _, err := r.writer.Write(pack, m); err != nil {
		pr.Status, pr.Err = StatusFailed, err
		return pr
	}

	pr.Status = StatusWritten
	return pr
}
