// Package view holds the renderer-neutral shapes the ui renderers consume.
package view

import (
	"github.com/arthur-debert/stemdex/pkg/core"
)

// StemCount is the number of loop files one stem lists in a pack.
type StemCount struct {
	Stem  string `json:"stem"`
	Files int    `json:"files"`
}

// PackRow is one pack of a listing. Error is set when the pack could not be
// read, in which case Stems is empty.
type PackRow struct {
	Name     string      `json:"name"`
	Manifest string      `json:"manifest"`
	Stems    []StemCount `json:"stems"`
	Total    int         `json:"total"`
	Error    string      `json:"error,omitempty"`
}

// Listing is the per-pack, per-stem view produced by `stemdex list`.
type Listing struct {
	StemNames []string  `json:"stemNames"`
	Packs     []PackRow `json:"packs"`
}

// FromResult builds a listing with one column per name in stemNames, in that
// order. Stems missing from a manifest count as zero.
func FromResult(result *core.Result, stemNames []string) *Listing {
	l := &Listing{
		StemNames: append([]string(nil), stemNames...),
		Packs:     []PackRow{},
	}
	if result == nil {
		return l
	}

	for _, pr := range result.Packs {
		row := PackRow{
			Name:     pr.Pack.Name,
			Manifest: pr.ManifestPath,
			Stems:    []StemCount{},
		}
		if pr.Err != nil {
			row.Error = pr.Err.Error()
			l.Packs = append(l.Packs, row)
			continue
		}
		for _, stem := range stemNames {
			n := 0
			if pr.Manifest != nil {
				n = len(pr.Manifest.Files(stem))
			}
			row.Stems = append(row.Stems, StemCount{Stem: stem, Files: n})
			row.Total += n
		}
		l.Packs = append(l.Packs, row)
	}
	return l
}

// Failed returns the rows whose pack could not be read.
func (l *Listing) Failed() []PackRow {
	var out []PackRow
	for _, row := range l.Packs {
		if row.Error != "" {
			out = append(out, row)
		}
	}
	return out
}
