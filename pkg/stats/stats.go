// Package stats summarizes a run into counters.
package stats

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/linkdot/pkg/types"
)

// Stats counts what a run saw and did
type Stats struct {
	// Items is the number of tasks reported: every task on a dry run,
	// every record otherwise
	Items int `json:"items"`

	// LinksCreated counts Success outcomes
	LinksCreated int `json:"links_created"`

	// Existed counts Existed outcomes
	Existed int `json:"existed"`

	// Skipped counts Skipped outcomes
	Skipped int `json:"skipped"`

	// Failed counts IOError outcomes
	Failed int `json:"failed"`

	// Backups counts successes that moved a previous target aside
	Backups int `json:"backups"`

	// Pending, Aliens and Linked describe the target states of a dry run
	Pending int `json:"pending,omitempty"`
	Aliens  int `json:"aliens,omitempty"`
	Linked  int `json:"linked,omitempty"`

	dry bool
}

// FromResult counts the tasks or records of result. A PreconditionFailed
// result yields zero counters.
func FromResult(result types.LinkageResult) Stats {
	var s Stats

	switch r := result.(type) {
	case types.DryResult:
		s.dry = true
		s.Items = len(r.Tasks)
		for _, task := range r.Tasks {
			switch task.State.(type) {
			case types.Absent:
				s.Pending++
			case types.AlienNode, types.AlienLink:
				s.Aliens++
			case types.Linked:
				s.Linked++
			default:
				panic(types.UnknownStateError(task.State))
			}
		}

	case types.PreconditionFailed:

	case types.Completed:
		s.Items = len(r.Records)
		for _, record := range r.Records {
			switch o := record.Outcome.(type) {
			case types.Success:
				s.LinksCreated++
				if o.BackupPath != "" {
					s.Backups++
				}
			case types.Existed:
				s.Existed++
			case types.Skipped:
				s.Skipped++
			case types.IOError:
				s.Failed++
			default:
				panic(types.UnknownOutcomeError(record.Outcome))
			}
		}

	default:
		panic(types.UnknownResultError(result))
	}

	return s
}

// IsDry reports whether the counters come from a dry run
func (s Stats) IsDry() bool {
	return s.dry
}

// String renders a one-line summary
func (s Stats) String() string {
	parts := []string{fmt.Sprintf("items: %d", s.Items)}
	if s.dry {
		parts = append(parts,
			fmt.Sprintf("to link: %d", s.Pending),
			fmt.Sprintf("alien: %d", s.Aliens),
			fmt.Sprintf("linked: %d", s.Linked),
		)
		return strings.Join(parts, ", ")
	}

	parts = append(parts, fmt.Sprintf("links: %d", s.LinksCreated))
	if s.Backups > 0 {
		parts = append(parts, fmt.Sprintf("backups: %d", s.Backups))
	}
	if s.Existed > 0 {
		parts = append(parts, fmt.Sprintf("existed: %d", s.Existed))
	}
	if s.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("skipped: %d", s.Skipped))
	}
	if s.Failed > 0 {
		parts = append(parts, fmt.Sprintf("failed: %d", s.Failed))
	}
	return strings.Join(parts, ", ")
}
