// Package types defines the data model shared by the aggregator, the
// executor and the presentation layer: the host Environment, the execution
// Mode, the classified LinkTask with its TargetState, and the LinkOutcome
// and LinkageResult values produced by a run.
//
// TargetState, LinkOutcome and LinkageResult are closed sum types. Each is
// an interface with an unexported marker method, so only the variants
// declared here satisfy it. Consumers switch over the concrete variants and
// treat any other value as a programming error.
package types
