package types

import "io/fs"

// LinkTask is one concrete (source, destination) pair with the state of the
// destination as observed during aggregation.
//
// SourceInfo and State are snapshots. They are never refreshed, so the
// filesystem may have changed by the time the task executes.
type LinkTask struct {
	// Source is the absolute path the link will point at
	Source string

	// SourceInfo is the metadata of Source captured at aggregation time
	SourceInfo fs.FileInfo

	// Target is the absolute, home-expanded path of the link itself
	Target string

	// State is the classification of Target
	State TargetState
}

// LinkRecord pairs a task with the outcome of executing it
type LinkRecord struct {
	Task    LinkTask
	Outcome LinkOutcome
}
