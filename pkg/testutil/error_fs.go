package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/stemdex/pkg/types"
)

// ErrorFS wraps a types.FS and returns injected errors for specific paths.
type ErrorFS struct {
	types.FS

	readDirErrors map[string]error
	writeErrors   map[string]error
}

// NewErrorFS wraps inner.
func NewErrorFS(inner types.FS) *ErrorFS {
	return &ErrorFS{
		FS:            inner,
		readDirErrors: make(map[string]error),
		writeErrors:   make(map[string]error),
	}
}

// FailReadDir makes ReadDir(path) return err.
func (e *ErrorFS) FailReadDir(path string, err error) *ErrorFS {
	e.readDirErrors[filepath.Clean(path)] = err
	return e
}

// FailWrite makes WriteFile(path) return err.
func (e *ErrorFS) FailWrite(path string, err error) *ErrorFS {
	e.writeErrors[filepath.Clean(path)] = err
	return e
}

func (e *ErrorFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err, ok := e.readDirErrors[filepath.Clean(name)]; ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	return e.FS.ReadDir(name)
}

func (e *ErrorFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err, ok := e.writeErrors[filepath.Clean(name)]; ok {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	return e.FS.WriteFile(name, data, perm)
}
