// Package core runs stemdex commands over every pack under a packs root.
//
// Each command validates the root first: a missing root is fatal and nothing
// else happens. Packs are then processed one at a time in name order. A
// failure inside one pack (unreadable directory, failed write) is recorded on
// that pack's result and the run moves on to the next pack; callers decide
// what exit status a partial failure deserves via Result.Err.
package core
