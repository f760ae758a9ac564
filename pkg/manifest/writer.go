package manifest

import (
	"path/filepath"

	"github.com/arthur-debert/stemdex/pkg/errors"
	"github.com/arthur-debert/stemdex/pkg/logging"
	"github.com/arthur-debert/stemdex/pkg/types"
)

// DefaultFilename is the manifest file written into each pack.
const DefaultFilename = "manifest.json"

// Writer persists manifests into pack directories.
type Writer struct {
	fs       types.FS
	filename string

	// DryRun encodes without touching the filesystem
	DryRun bool
}

// NewWriter creates a Writer. An empty filename means DefaultFilename.
func NewWriter(filesystem types.FS, filename string) *Writer {
	if filename == "" {
		filename = DefaultFilename
	}
	return &Writer{fs: filesystem, filename: filename}
}

// Filename returns the manifest file name inside a pack.
func (w *Writer) Filename() string {
	return w.filename
}

// Path returns where the manifest of pack lives.
func (w *Writer) Path(pack types.Pack) string {
	return filepath.Join(pack.Path, w.filename)
}

// Write encodes m and writes it over any existing manifest in pack. The
// write is not atomic; an interrupted write leaves a file the next run
// regenerates.
func (w *Writer) Write(pack types.Pack, m *Manifest) (string, error) {
	path := w.Path(pack)
	logger := logging.GetLogger("manifest.writer").With().
		Str("pack", pack.Name).
		Str("path", path).
		Logger()

	data, err := Encode(m)
	if err != nil {
		return path, err
	}

	if w.DryRun {
		logger.Info().Int("bytes", len(data)).Msg("Dry run, manifest not written")
		return path, nil
	}

	if err := w.fs.WriteFile(path, data, 0644); err != nil {
		return path, errors.Wrap(err, errors.ErrManifestWrite, "failed to write manifest").
			WithDetail("pack", pack.Name).
			WithDetail("path", path)
	}

	logger.Debug().Int("bytes", len(data)).Msg("Wrote manifest")
	return path, nil
}

// Read loads the manifest stored in pack.
func (w *Writer) Read(pack types.Pack) (*Manifest, []byte, error) {
	return Read(w.fs, w.Path(pack))
}

// Read loads and decodes the manifest at path, returning the raw bytes too.
func Read(filesystem types.FS, path string) (*Manifest, []byte, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrManifestRead, "failed to read manifest").
			WithDetail("path", path)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, data, err
	}
	return m, data, nil
}
