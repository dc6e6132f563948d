// Package core drives one linking run from a manifest path to a result.
//
// A run goes through these stages:
//
//  1. Resolve the manifest location; its directory becomes the root that
//     link sources are relative to.
//  2. Load and validate the manifest.
//  3. Resolve the host environment and the matching linker.
//  4. Aggregate and classify the tasks, then sort them by target state.
//  5. Apply the selected mode.
//
// Errors from stages 1 to 4 abort the run before anything is written.
// Failures of single tasks are part of the returned result instead.
package core
