package core

import (
	"github.com/arthur-debert/stemdex/pkg/errors"
	"github.com/arthur-debert/stemdex/pkg/manifest"
	"github.com/arthur-debert/stemdex/pkg/types"
)

// Status is the outcome for one pack.
type Status string

const (
	StatusWritten Status = "written"
	StatusListed  Status = "listed"
	StatusOK      Status = "ok"
	StatusStale   Status = "stale"
	StatusMissing Status = "missing"
	StatusFailed  Status = "failed"
)

// PackResult is what happened to one pack.
type PackResult struct {
	Pack         types.Pack
	ManifestPath string
	Manifest     *manifest.Manifest
	Status       Status
	Err          error
}

// FileCount is the number of loop files listed in the pack's manifest.
func (p PackResult) FileCount() int {
	if p.Manifest == nil {
		return 0
	}
	return p.Manifest.FileCount()
}

// Result collects per-pack results in processing order.
type Result struct {
	Packs  []PackResult
	DryRun bool
}

// WithStatus returns the pack results carrying status.
func (r *Result) WithStatus(status Status) []PackResult {
	var out []PackResult
	for _, p := range r.Packs {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// Failed returns the packs whose processing failed.
func (r *Result) Failed() []PackResult {
	return r.WithStatus(StatusFailed)
}

// Err summarizes pack failures, then stale or missing manifests, as one
// error. It is nil when every pack succeeded.
func (r *Result) Err() error {
	if failed := r.Failed(); len(failed) > 0 {
		return errors.Newf(errors.ErrPacksFailed, "%d of %d pack(s) failed", len(failed), len(r.Packs)).
			WithDetail("packs", packNames(failed))
	}

	outdated := append(r.WithStatus(StatusStale), r.WithStatus(StatusMissing)...)
	if len(outdated) > 0 {
		return errors.Newf(errors.ErrManifestStale, "%d manifest(s) out of date", len(outdated)).
			WithDetail("packs", packNames(outdated))
	}
	return nil
}

func packNames(results []PackResult) []string {
	names := make([]string, len(results))
	for i, p := range results {
		names[i] = p.Pack.Name
	}
	return names
}
