// Package aggregator expands manifest entries into concrete link tasks and
// classifies the current state of every destination.
//
// Aggregation reads the filesystem but never mutates it. Each task carries
// a snapshot of its source metadata and of its destination state; nothing
// re-checks them before execution, so a change on disk between aggregation
// and execution is not noticed.
//
// Tasks are ordered by destination state: Linked, then AlienLink, then
// AlienNode, then Absent. Ties keep their aggregation order.
package aggregator
