// Package testutil provides helpers for stemdex tests: in-memory
// filesystems, pack fixtures and filesystem doubles that fail on demand.
package testutil
