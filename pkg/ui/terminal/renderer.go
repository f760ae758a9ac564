// Package terminal provides rich terminal output with colors and tables
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/stemdex/pkg/ui/view"
	"github.com/pterm/pterm"
)

// Renderer renders pterm tables and lipgloss styled messages
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderListing renders one table row per pack with a column per stem
func (r *Renderer) RenderListing(listing *view.Listing) error {
	if len(listing.Packs) == 0 {
		return r.RenderMessage("No packs found.")
	}

	header := []string{"Pack"}
	for _, stem := range listing.StemNames {
		header = append(header, stem)
	}
	header = append(header, "Total")

	data := pterm.TableData{header}
	for _, row := range listing.Packs {
		if row.Error != "" {
			continue
		}
		cells := []string{row.Name}
		for _, sc := range row.Stems {
			cell := strconv.Itoa(sc.Files)
			if sc.Files == 0 {
				cell = MutedStyle.Render(cell)
			}
			cells = append(cells, cell)
		}
		cells = append(cells, pterm.Bold.Sprint(strconv.Itoa(row.Total)))
		data = append(data, cells)
	}

	if len(data) > 1 {
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.output, strings.TrimRight(table, "\n")); err != nil {
			return err
		}
	}

	for _, row := range listing.Failed() {
		line := ErrorStyle.Render("✗ "+row.Name) + " " + MutedStyle.Render(row.Error)
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, InfoStyle.Render(msg))
	return err
}
