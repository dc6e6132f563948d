// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/ui/display"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}
}

// RenderReport renders the report as a single JSON document
func (r *Renderer) RenderReport(report *display.Report) error {
	return r.encoder.Encode(report)
}

// RenderError renders an error as JSON, with its code when it has one
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
