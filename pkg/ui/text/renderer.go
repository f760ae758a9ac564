// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/stemdex/pkg/ui/view"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderListing renders an aligned table; failed packs show their error in
// place of the counts
func (r *Renderer) RenderListing(listing *view.Listing) error {
	if len(listing.Packs) == 0 {
		return r.RenderMessage("No packs found.")
	}

	tw := tabwriter.NewWriter(r.output, 0, 0, 2, ' ', 0)

	header := append([]string{"PACK"}, upper(listing.StemNames)...)
	header = append(header, "TOTAL")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range listing.Packs {
		if row.Error != "" {
			fmt.Fprintf(tw, "%s\terror: %s\n", row.Name, row.Error)
			continue
		}
		cells := []string{row.Name}
		for _, sc := range row.Stems {
			cells = append(cells, fmt.Sprint(sc.Files))
		}
		cells = append(cells, fmt.Sprint(row.Total))
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func upper(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToUpper(n)
	}
	return out
}
