package core

import (
	"io"

	"github.com/arthur-debert/stemdex/pkg/config"
	"github.com/arthur-debert/stemdex/pkg/errors"
	"github.com/arthur-debert/stemdex/pkg/filesystem"
	"github.com/arthur-debert/stemdex/pkg/manifest"
	"github.com/arthur-debert/stemdex/pkg/packs"
	"github.com/arthur-debert/stemdex/pkg/types"
)

// Options is shared by every command.
type Options struct {
	// PacksRoot is the directory holding the packs.
	PacksRoot string

	// PackNames restricts the run to these packs; empty means all.
	PackNames []string

	// Config supplies stems, manifest filename and ignore rules.
	// Nil means config.Default().
	Config *config.Config

	// FileSystem defaults to the OS filesystem.
	FileSystem types.FS

	// DryRun builds manifests without writing them.
	DryRun bool

	// Out receives one summary line per pack. Nil discards them.
	Out io.Writer
}

// run is the resolved form of Options.
type run struct {
	opts    Options
	fs      types.FS
	out     io.Writer
	packs   []types.Pack
	builder *manifest.Builder
	writer  *manifest.Writer
}

// prepare resolves defaults, builds the stem set and discovers packs. Any
// error here is fatal to the whole run.
func prepare(opts Options) (*run, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	set, err := cfg.StemSet()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid stem configuration")
	}

	selected, err := packs.DiscoverAndSelect(opts.PacksRoot, opts.PackNames, fs, packs.Options{
		Ignore:     cfg.Packs.Ignore,
		IgnoreFile: cfg.Packs.IgnoreFile,
	})
	if err != nil {
		return nil, err
	}

	writer := manifest.NewWriter(fs, cfg.Manifest.Filename)
	writer.DryRun = opts.DryRun

	return &run{
		opts:    opts,
		fs:      fs,
		out:     out,
		packs:   selected,
		builder: manifest.NewBuilder(fs, set),
		writer:  writer,
	}, nil
}
