// Package packs provides functionality for discovering and selecting loop
// packs under a packs root directory.
//
// A pack is an immediate subdirectory of the root; its name is its
// identity. This package handles:
//
//   - Packs root validation
//   - Pack discovery in name order
//   - Pack ignore functionality (ignore patterns and marker files)
//   - Pack filtering and selection by name
package packs
