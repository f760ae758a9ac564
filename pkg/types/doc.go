// Package types holds the small set of types shared across stemdex packages:
// the filesystem abstraction every component reads and writes through, and
// the Pack value produced by discovery.
package types
