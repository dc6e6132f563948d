// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/linkdot/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderReport prints one "STATUS :: source -> target" line per entry,
// followed by the summary
func (r *Renderer) RenderReport(report *display.Report) error {
	if report.Kind == display.KindPreconditionFailed {
		_, err := fmt.Fprintln(r.output, report.PreconditionMessage())
		return err
	}

	width := report.Kind.Width()
	for _, entry := range report.Entries {
		if _, err := fmt.Fprintf(r.output, "%-*s :: %s -> %s\n", width, entry.Status, entry.Source, entry.Target); err != nil {
			return err
		}
		if entry.Backup != "" {
			if _, err := fmt.Fprintf(r.output, "\tbackup: %s\n", entry.Backup); err != nil {
				return err
			}
		}
		if entry.Error != "" {
			if _, err := fmt.Fprintf(r.output, "\t%s\n", entry.Error); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(r.output, "\n%s\n", report.Stats.String())
	return err
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
