// Package testutil provides utilities for testing linkdot components.
//
// Key components:
//   - TestEnvironment: an isolated root and home directory under t.TempDir()
//     with HOME redirected, so "~/" destinations never touch the real home
//   - RecordingFS: a types.FS wrapper that records every mutating call,
//     used to assert that a policy performed no side effects
//   - CreateFile / CreateSymlink helpers that fail the test on error
package testutil
