// Package stems defines the recognized instrument stems and matches loop
// files against them.
//
// A loop file is a direct child of a pack directory named
// <stem>_loop_<digits>.<extension>, for example drums_loop_01.ogg. The stem
// set is an immutable value handed to whoever needs it; there is no
// package-level stem list to mutate.
package stems
