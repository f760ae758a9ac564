package natsort

import (
	"sort"
	"strings"
)

// Token is one run of a natural sort key.
type Token struct {
	// Text is the lower-cased run for text tokens, or the digits without
	// leading zeros for number tokens ("" means zero).
	Text string

	// Number marks a digit run
	Number bool
}

// Key is the comparison key of a string.
type Key []Token

// KeyOf splits s into its natural sort key.
func KeyOf(s string) Key {
	key := Key{}
	start := 0
	inDigits := false

	for i := 0; i < len(s); i++ {
		d := isDigit(s[i])
		if d == inDigits {
			continue
		}
		key = append(key, newToken(s[start:i], inDigits))
		start = i
		inDigits = d
	}
	key = append(key, newToken(s[start:], inDigits))

	if inDigits {
		key = append(key, Token{})
	}
	return key
}

func newToken(run string, digits bool) Token {
	if digits {
		return Token{Text: strings.TrimLeft(run, "0"), Number: true}
	}
	return Token{Text: strings.ToLower(run)}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to
// or after b.
func Compare(a, b Key) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareTokens(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func compareTokens(a, b Token) int {
	switch {
	case a.Number && b.Number:
		if len(a.Text) != len(b.Text) {
			if len(a.Text) < len(b.Text) {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Text, b.Text)
	case a.Number != b.Number:
		// text before number
		if b.Number {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Text, b.Text)
}

// Less reports whether a sorts before b in natural order.
func Less(a, b string) bool {
	return Compare(KeyOf(a), KeyOf(b)) < 0
}

// Sort sorts names in place in natural order. Names with equal keys, such as
// "loop_01" and "loop_1", keep their input order.
func Sort(names []string) {
	keys := make([]Key, len(names))
	for i, n := range names {
		keys[i] = KeyOf(n)
	}
	sort.Stable(byKey{names: names, keys: keys})
}

// Sorted returns a naturally sorted copy of names.
func Sorted(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	Sort(out)
	return out
}

type byKey struct {
	names []string
	keys  []Key
}

func (b byKey) Len() int           { return len(b.names) }
func (b byKey) Less(i, j int) bool { return Compare(b.keys[i], b.keys[j]) < 0 }
func (b byKey) Swap(i, j int) {
	b.names[i], b.names[j] = b.names[j], b.names[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}
