package ui

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// EnvNoColor disables colored output when set to any value
const EnvNoColor = "NO_COLOR"

// Format names a report format. The values are the ones accepted by the
// "format" config key, LINKDOT_FORMAT and --format.
type Format string

const (
	// FormatAuto picks FormatTerminal on a color terminal and FormatText otherwise
	FormatAuto Format = "auto"
	// FormatTerminal renders badges and paths with colors
	FormatTerminal Format = "term"
	// FormatText renders "STATUS :: source -> target" lines without styling
	FormatText Format = "text"
	// FormatJSON renders the report as one JSON document
	FormatJSON Format = "json"
)

// Formats lists every accepted format, in help order
var Formats = []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON}

func (f Format) String() string {
	return string(f)
}

// ParseFormat reads a format name as it appears in the config or on the
// command line. Case and surrounding space are ignored; empty means auto.
func ParseFormat(s string) (Format, error) {
	name := Format(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return FormatAuto, nil
	}
	if !slices.Contains(Formats, name) {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format %q (expected auto, term, text or json)", s).
			WithDetail("format", s)
	}
	return name, nil
}

// Resolve returns the concrete format used to write a report to out.
// Only FormatAuto depends on out.
func (f Format) Resolve(out io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if colorTerminal(out) {
		return FormatTerminal
	}
	return FormatText
}

// colorTerminal reports whether out is a terminal that shows colors.
// Buffers, pipes, redirected files and NO_COLOR all get plain text.
func colorTerminal(out io.Writer) bool {
	if os.Getenv(EnvNoColor) != "" {
		return false
	}

	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return false
	}

	return termenv.NewOutput(file).ColorProfile() != termenv.Ascii
}
