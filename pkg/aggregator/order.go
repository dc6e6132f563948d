package aggregator

import (
	"cmp"
	"slices"

	"github.com/arthur-debert/linkdot/pkg/types"
)

// stateRank places already-correct links first and missing destinations last
func stateRank(s types.TargetState) int {
	switch s.(type) {
	case types.Linked:
		return 0
	case types.AlienLink:
		return 1
	case types.AlienNode:
		return 2
	case types.Absent:
		return 3
	default:
		panic(types.UnknownStateError(s))
	}
}

// CompareTasks orders tasks by the shape of their target state only:
// Linked < AlienLink < AlienNode < Absent.
func CompareTasks(a, b types.LinkTask) int {
	return cmp.Compare(stateRank(a.State), stateRank(b.State))
}

// SortTasks sorts tasks in place with CompareTasks, keeping the relative
// order of tasks in the same state.
func SortTasks(tasks []types.LinkTask) {
	slices.SortStableFunc(tasks, CompareTasks)
}
