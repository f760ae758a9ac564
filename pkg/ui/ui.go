// Package ui renders command output in different formats.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/stemdex/pkg/ui/json"
	"github.com/arthur-debert/stemdex/pkg/ui/terminal"
	"github.com/arthur-debert/stemdex/pkg/ui/text"
	"github.com/arthur-debert/stemdex/pkg/ui/view"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderListing renders the per-pack stem counts of `stemdex list`
	RenderListing(listing *view.Listing) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// not a file, nothing to detect
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
