// Package executor applies a linking policy to classified tasks.
//
// Four policies exist:
//
//	dry     nothing is executed; the tasks are returned for display
//	strict  every task is linked, but only when every destination is absent
//	lazy    absent destinations are linked, everything else is dropped
//	force   every destination is linked, moving existing nodes to a backup
//
// Tasks are executed one after the other in the order given. A failing task
// is recorded as an IOError outcome and the remaining tasks still run.
package executor
