// Package manifest builds, encodes and writes pack manifests.
//
// A manifest maps stem names to the loop files a pack holds for that stem:
//
//	{
//	  "drums": [
//	    "drums_loop_01.ogg",
//	    "drums_loop_02.ogg"
//	  ],
//	  "bass": [
//	    "bass_loop_01.ogg"
//	  ]
//	}
//
// Keys follow the configured stem order, never map iteration order, and
// stems without files are left out. The encoding is fixed (2-space indent,
// ASCII-only, trailing newline) so regenerating an unchanged pack produces
// identical bytes. A manifest is a cache of a directory listing and is
// always safe to overwrite.
package manifest
