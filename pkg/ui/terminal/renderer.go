// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/linkdot/pkg/style"
	"github.com/arthur-debert/linkdot/pkg/ui/display"
)

// Renderer provides colored output: pterm badges and lipgloss paths
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderReport renders a header, one badge line per entry and the summary
func (r *Renderer) RenderReport(report *display.Report) error {
	header := style.TitleStyle.Render(report.Mode) + " " + style.MutedStyle.Render(report.Manifest)
	if _, err := fmt.Fprintln(r.output, header); err != nil {
		return err
	}

	if report.Kind == display.KindPreconditionFailed {
		_, err := fmt.Fprintln(r.output, style.WarningStyle.Render(report.PreconditionMessage()))
		return err
	}

	arrow := style.ArrowStyle.Render("->")
	width := report.Kind.Width()
	for _, entry := range report.Entries {
		line := fmt.Sprintf("%s :: %s %s %s",
			style.Badge(string(entry.Status), width),
			style.PathStyle.Render(entry.Source),
			arrow,
			entry.Target,
		)
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
		if entry.Backup != "" {
			if _, err := fmt.Fprintln(r.output, "\t"+style.MutedStyle.Render("backup: "+entry.Backup)); err != nil {
				return err
			}
		}
		if entry.Error != "" {
			if _, err := fmt.Fprintln(r.output, "\t"+style.ErrorStyle.Render(entry.Error)); err != nil {
				return err
			}
		}
	}

	summary := style.MutedStyle.Render(report.Stats.String())
	if report.Failed() {
		summary = style.ErrorStyle.Render(report.Stats.String())
	}
	_, err := fmt.Fprintf(r.output, "\n%s\n", summary)
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, style.ErrorStyle.Render("Error: "+err.Error()))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
