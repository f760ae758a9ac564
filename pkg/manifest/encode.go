package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/arthur-debert/stemdex/pkg/errors"
)

// Encode renders m in the on-disk format: 2-space indentation, one array
// element per line, non-ASCII characters escaped as \uXXXX and a single
// trailing newline. An empty manifest encodes as "{}\n".
func Encode(m *Manifest) ([]byte, error) {
	if m == nil {
		m = New()
	}
	raw, err := m.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal manifest")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to indent manifest")
	}
	out := escapeNonASCII(buf.Bytes())
	return append(out, '\n'), nil
}

// Decode parses manifest bytes.
func Decode(data []byte) (*Manifest, error) {
	m := New()
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid manifest")
	}
	return m, nil
}

// escapeNonASCII rewrites every rune above U+007F as a lower-case \uXXXX
// escape, using a surrogate pair above the BMP. Non-ASCII bytes can only
// appear inside JSON strings so this never touches structure.
func escapeNonASCII(in []byte) []byte {
	ascii := true
	for _, c := range in {
		if c >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return in
	}

	out := make([]byte, 0, len(in)+16)
	for len(in) > 0 {
		r, size := utf8.DecodeRune(in)
		in = in[size:]
		switch {
		case r < utf8.RuneSelf:
			out = append(out, byte(r))
		case r > 0xFFFF:
			r -= 0x10000
			out = append(out, fmt.Sprintf(`\u%04x\u%04x`, 0xD800+(r>>10), 0xDC00+(r&0x3FF))...)
		default:
			out = append(out, fmt.Sprintf(`\u%04x`, r)...)
		}
	}
	return out
}
