package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/linkdot/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/linkdot/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/linkdot/internal/version.Date={{.Date}}
)

// Info returns the multi-line version banner
func Info() string {
	return fmt.Sprintf("linkdot version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
