// Package filesystem provides filesystem implementations for linkdot.
//
// This package contains implementations of the types.FS interface: the OS
// filesystem used for real runs and an afero-backed one, whose read-only
// variant serves dry runs.
package filesystem
