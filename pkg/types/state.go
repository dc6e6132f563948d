package types

import (
	"fmt"
	"io/fs"
)

// StateKind names the variant of a TargetState
type StateKind string

const (
	StateAbsent    StateKind = "absent"
	StateAlienNode StateKind = "alien_node"
	StateAlienLink StateKind = "alien_link"
	StateLinked    StateKind = "linked"
)

// TargetState is the classified state of a link destination.
// The variants are Absent, AlienNode, AlienLink and Linked.
type TargetState interface {
	Kind() StateKind
	isTargetState()
}

// Absent means the destination does not exist
type Absent struct{}

// AlienNode means the destination exists and is not a symbolic link.
// Info describes the file or directory found there.
type AlienNode struct {
	Info fs.FileInfo
}

// AlienLink means the destination is a symbolic link pointing somewhere
// other than the task's source. Info describes the link itself.
type AlienLink struct {
	Info fs.FileInfo
}

// Linked means the destination is a symbolic link already pointing at the
// task's source. Info describes the link itself.
type Linked struct {
	Info fs.FileInfo
}

func (Absent) Kind() StateKind    { return StateAbsent }
func (AlienNode) Kind() StateKind { return StateAlienNode }
func (AlienLink) Kind() StateKind { return StateAlienLink }
func (Linked) Kind() StateKind    { return StateLinked }

func (Absent) isTargetState()    {}
func (AlienNode) isTargetState() {}
func (AlienLink) isTargetState() {}
func (Linked) isTargetState()    {}

// IsAbsent reports whether s is the Absent variant
func IsAbsent(s TargetState) bool {
	_, ok := s.(Absent)
	return ok
}

// UnknownStateError builds the panic value used when a switch meets a
// TargetState outside the closed set.
func UnknownStateError(s TargetState) string {
	return fmt.Sprintf("linkdot: unknown target state %T", s)
}
