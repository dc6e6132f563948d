// Package display converts run results into the view model every renderer
// consumes.
package display

import (
	"github.com/arthur-debert/linkdot/pkg/core"
	"github.com/arthur-debert/linkdot/pkg/stats"
	"github.com/arthur-debert/linkdot/pkg/types"
)

// Kind says which of the three result shapes a Report holds
type Kind string

const (
	KindDry                Kind = "dry"
	KindPreconditionFailed Kind = "precondition_failed"
	KindCompleted          Kind = "completed"
)

// Status is the badge shown in front of an entry
type Status string

const (
	// Dry run statuses
	StatusTodo   Status = "TODO"
	StatusAlien  Status = "ALIEN"
	StatusLinked Status = "LINKED"

	// Completed run statuses
	StatusSuccess Status = "SUCCESS"
	StatusSkipped Status = "SKIPPED"
	StatusExisted Status = "EXISTED"
	StatusError   Status = "ERROR"
)

// Column widths of the status badges
const (
	DryStatusWidth = 6
	StatusWidth    = 7
)

// Width returns the badge column width for reports of kind k
func (k Kind) Width() int {
	if k == KindDry {
		return DryStatusWidth
	}
	return StatusWidth
}

// Report is the rendering input for one run
type Report struct {
	RunID       string      `json:"run_id"`
	Manifest    string      `json:"manifest"`
	Root        string      `json:"root"`
	Environment string      `json:"environment"`
	Mode        string      `json:"mode"`
	Kind        Kind        `json:"kind"`
	Reason      string      `json:"reason,omitempty"`
	Entries     []Entry     `json:"entries"`
	Stats       stats.Stats `json:"stats"`
}

// Entry is one task line
type Entry struct {
	Status Status `json:"status"`
	State  string `json:"state"`
	Source string `json:"source"`
	Target string `json:"target"`
	Backup string `json:"backup,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Failed reports whether the run should exit non-zero
func (r *Report) Failed() bool {
	if r.Kind == KindPreconditionFailed {
		return true
	}
	return r.Stats.Failed > 0
}

// PreconditionMessage is the line shown when strict mode refused to run
func (r *Report) PreconditionMessage() string {
	return "Precondition failed: " + r.Reason + ". Try to run in the dry mode."
}

// FromResult builds the report for res
func FromResult(res *core.LinkResult) *Report {
	report := &Report{
		RunID:       res.RunID,
		Manifest:    res.ManifestPath,
		Root:        res.Root,
		Environment: res.Environment.String(),
		Mode:        res.Mode.String(),
		Entries:     []Entry{},
		Stats:       res.Stats,
	}

	switch r := res.Result.(type) {
	case types.DryResult:
		report.Kind = KindDry
		for _, task := range r.Tasks {
			report.Entries = append(report.Entries, Entry{
				Status: DryStatus(task.State),
				State:  string(task.State.Kind()),
				Source: task.Source,
				Target: task.Target,
			})
		}

	case types.PreconditionFailed:
		report.Kind = KindPreconditionFailed
		report.Reason = r.Reason

	case types.Completed:
		report.Kind = KindCompleted
		for _, record := range r.Records {
			entry := Entry{
				Status: OutcomeStatus(record.Outcome),
				State:  string(record.Task.State.Kind()),
				Source: record.Task.Source,
				Target: record.Task.Target,
			}
			switch o := record.Outcome.(type) {
			case types.Success:
				entry.Backup = o.BackupPath
			case types.IOError:
				entry.Error = o.Error()
			}
			report.Entries = append(report.Entries, entry)
		}

	default:
		panic(types.UnknownResultError(res.Result))
	}

	return report
}

// DryStatus maps a target state to its dry run badge
func DryStatus(s types.TargetState) Status {
	switch s.(type) {
	case types.Absent:
		return StatusTodo
	case types.AlienNode, types.AlienLink:
		return StatusAlien
	case types.Linked:
		return StatusLinked
	default:
		panic(types.UnknownStateError(s))
	}
}

// OutcomeStatus maps an outcome to its badge
func OutcomeStatus(o types.LinkOutcome) Status {
	switch o.(type) {
	case types.Success:
		return StatusSuccess
	case types.Skipped:
		return StatusSkipped
	case types.Existed:
		return StatusExisted
	case types.IOError:
		return StatusError
	default:
		panic(types.UnknownOutcomeError(o))
	}
}
