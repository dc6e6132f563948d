// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"io"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/ui/display"
	"github.com/arthur-debert/linkdot/pkg/ui/json"
	"github.com/arthur-debert/linkdot/pkg/ui/terminal"
	"github.com/arthur-debert/linkdot/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderReport renders the outcome of a run
	RenderReport(report *display.Report) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer returns the renderer writing format to output. FormatAuto is
// resolved against output first.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format.Resolve(output) {
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q", string(format))
	}
}
