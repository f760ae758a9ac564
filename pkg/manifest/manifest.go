package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one stem and its naturally sorted loop files.
type Entry struct {
	Stem  string
	Files []string
}

// Manifest is an ordered stem -> files mapping. The zero value is an empty
// manifest and encodes as {}.
type Manifest struct {
	entries []Entry
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{}
}

// Add appends stem with files. Adding a stem that is already present
// replaces its files in place, keeping its original position.
func (m *Manifest) Add(stem string, files []string) {
	cp := make([]string, len(files))
	copy(cp, files)

	for i := range m.entries {
		if m.entries[i].Stem == stem {
			m.entries[i].Files = cp
			return
		}
	}
	m.entries = append(m.entries, Entry{Stem: stem, Files: cp})
}

// Stems returns the keys in order.
func (m *Manifest) Stems() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Stem
	}
	return out
}

// Files returns the files listed for stem, or nil.
func (m *Manifest) Files(stem string) []string {
	for _, e := range m.entries {
		if e.Stem == stem {
			return e.Files
		}
	}
	return nil
}

// Len returns the number of stems.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// FileCount returns the number of files across all stems.
func (m *Manifest) FileCount() int {
	n := 0
	for _, e := range m.entries {
		n += len(e.Files)
	}
	return n
}

// MarshalJSON writes the manifest as a compact JSON object in key order.
func (m Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(&buf, e.Stem); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		files := e.Files
		if files == nil {
			files = []string{}
		}
		if err := writeJSONValue(&buf, files); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v interface{}) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

// UnmarshalJSON reads a JSON object of string arrays, keeping key order.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("manifest must be a JSON object, got %v", tok)
	}

	m.entries = nil
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		stem, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected manifest key %v", tok)
		}
		var files []string
		if err := dec.Decode(&files); err != nil {
			return fmt.Errorf("stem %q: %w", stem, err)
		}
		m.Add(stem, files)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after manifest object")
	}
	return nil
}
