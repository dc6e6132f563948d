package style

import (
	"fmt"

	"github.com/pterm/pterm"
)

// StatusStyle returns the pterm style of a status badge
func StatusStyle(status string) *pterm.Style {
	switch status {
	case "LINKED", "SUCCESS":
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case "TODO", "SKIPPED":
		return pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	case "ALIEN", "ERROR":
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case "EXISTED":
		return pterm.NewStyle(pterm.FgBlue, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Badge pads status to width and colors it. Padding happens before
// styling so escape codes do not count towards the width.
func Badge(status string, width int) string {
	return StatusStyle(status).Sprint(fmt.Sprintf("%-*s", width, status))
}
