// Package style holds the colors, lipgloss styles and pterm badges of the
// terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	ArrowStyle = lipgloss.NewStyle().
			Foreground(ArrowColor).
			Bold(true)
)

var namedStyles = map[string]lipgloss.Style{
	"Title":   TitleStyle,
	"Muted":   MutedStyle,
	"Success": SuccessStyle,
	"Error":   ErrorStyle,
	"Warning": WarningStyle,
	"Path":    PathStyle,
	"Arrow":   ArrowStyle,
}

// GetStyle returns a style by name, or an empty style for unknown names
func GetStyle(name string) lipgloss.Style {
	if s, ok := namedStyles[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
