package types

import "fmt"

// LinkageResult is the top-level result of a run.
// The variants are DryResult, PreconditionFailed and Completed.
type LinkageResult interface {
	isLinkageResult()
}

// DryResult carries the classified tasks, unexecuted
type DryResult struct {
	Tasks []LinkTask
}

// PreconditionFailed means strict mode refused the whole batch
type PreconditionFailed struct {
	Reason string
}

// Completed carries one record per executed task
type Completed struct {
	Records []LinkRecord
}

func (DryResult) isLinkageResult()          {}
func (PreconditionFailed) isLinkageResult() {}
func (Completed) isLinkageResult()          {}

// HasFailures reports whether any record of a Completed result is an IOError
func (c Completed) HasFailures() bool {
	for _, r := range c.Records {
		if _, ok := r.Outcome.(IOError); ok {
			return true
		}
	}
	return false
}

// UnknownResultError builds the panic value used when a switch meets a
// LinkageResult outside the closed set.
func UnknownResultError(r LinkageResult) string {
	return fmt.Sprintf("linkdot: unknown linkage result %T", r)
}
