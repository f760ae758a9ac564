// Package natsort orders strings so that embedded runs of digits compare by
// numeric value: "loop_2" sorts before "loop_10".
//
// A key splits a string into alternating text and number tokens. Keys
// always start with a text token, which may be empty when the string starts
// with a digit, and always end with a text token, which may be empty when the
// string ends with a digit:
//
//	"drums_loop_10.ogg" -> ["drums_loop_", 10, ".ogg"]
//	"10abc"             -> ["", 10, "abc"]
//	"7"                 -> ["", 7, ""]
//
// Because of that shape two keys always carry the same token type at the same
// position. Compare still defines an order for mismatched types (text before
// number) so the comparator is total for any key values.
package natsort
