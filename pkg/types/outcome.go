package types

import "fmt"

// OutcomeKind names the variant of a LinkOutcome
type OutcomeKind string

const (
	OutcomeExisted OutcomeKind = "existed"
	OutcomeSkipped OutcomeKind = "skipped"
	OutcomeSuccess OutcomeKind = "success"
	OutcomeIOError OutcomeKind = "error"
)

// LinkOutcome is the result of executing a single task.
// The variants are Existed, Skipped, Success and IOError.
type LinkOutcome interface {
	Kind() OutcomeKind
	isLinkOutcome()
}

// Existed means the destination already linked to the source
type Existed struct{}

// Skipped means the policy declined to touch an alien destination
type Skipped struct{}

// Success means the link was created. BackupPath holds the name the
// previous destination was moved to, or is empty when nothing was there.
type Success struct {
	BackupPath string
}

// IOError means the backup or the link creation failed
type IOError struct {
	Err error
}

func (Existed) Kind() OutcomeKind { return OutcomeExisted }
func (Skipped) Kind() OutcomeKind { return OutcomeSkipped }
func (Success) Kind() OutcomeKind { return OutcomeSuccess }
func (IOError) Kind() OutcomeKind { return OutcomeIOError }

func (Existed) isLinkOutcome() {}
func (Skipped) isLinkOutcome() {}
func (Success) isLinkOutcome() {}
func (IOError) isLinkOutcome() {}

// Error returns the message of the wrapped error
func (e IOError) Error() string {
	if e.Err == nil {
		return "unknown I/O error"
	}
	return e.Err.Error()
}

// Unwrap exposes the wrapped error
func (e IOError) Unwrap() error {
	return e.Err
}

// UnknownOutcomeError builds the panic value used when a switch meets a
// LinkOutcome outside the closed set.
func UnknownOutcomeError(o LinkOutcome) string {
	return fmt.Sprintf("linkdot: unknown link outcome %T", o)
}
