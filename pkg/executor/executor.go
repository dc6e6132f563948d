package executor

import (
	"fmt"

	"github.com/arthur-debert/linkdot/pkg/linker"
	"github.com/arthur-debert/linkdot/pkg/logging"
	"github.com/arthur-debert/linkdot/pkg/types"
	"github.com/rs/zerolog"
)

// StrictPreconditionReason is reported when strict mode meets a destination
// that already exists
const StrictPreconditionReason = "some of the targets exist"

// Executor runs tasks against a filesystem through a platform Linker
type Executor struct {
	fs     types.FS
	linker linker.Linker
	logger zerolog.Logger
}

// New creates an Executor
func New(fsys types.FS, l linker.Linker) *Executor {
	return &Executor{
		fs:     fsys,
		linker: l,
		logger: logging.GetLogger("executor"),
	}
}

// WithLogger returns a copy of the executor logging through logger
func (e *Executor) WithLogger(logger zerolog.Logger) *Executor {
	cp := *e
	cp.logger = logger
	return &cp
}

// Run applies mode to tasks. tasks are expected to be sorted already.
func (e *Executor) Run(mode types.Mode, tasks []types.LinkTask) types.LinkageResult {
	e.logger.Debug().
		Str("mode", mode.String()).
		Int("tasks", len(tasks)).
		Msg("Running link tasks")

	switch mode {
	case types.ModeDry:
		return types.DryResult{Tasks: tasks}

	case types.ModeStrict:
		for _, task := range tasks {
			if !types.IsAbsent(task.State) {
				e.logger.Info().
					Str("target", task.Target).
					Str("state", string(task.State.Kind())).
					Msg("Strict mode refuses existing target")
				return types.PreconditionFailed{Reason: StrictPreconditionReason}
			}
		}
		return e.executeAll(tasks, false)

	case types.ModeLazy:
		absent := make([]types.LinkTask, 0, len(tasks))
		for _, task := range tasks {
			if types.IsAbsent(task.State) {
				absent = append(absent, task)
			}
		}
		return e.executeAll(absent, false)

	case types.ModeForce:
		return e.executeAll(tasks, true)

	default:
		panic(fmt.Sprintf("linkdot: unknown mode %q", mode))
	}
}

func (e *Executor) executeAll(tasks []types.LinkTask, overwrite bool) types.Completed {
	records := make([]types.LinkRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, types.LinkRecord{
			Task:    task,
			Outcome: e.ExecuteTask(task, overwrite),
		})
	}
	return types.Completed{Records: records}
}

// ExecuteTask links a single task. An existing alien destination is only
// touched when overwrite is set, in which case it is moved to a backup name
// first.
func (e *Executor) ExecuteTask(task types.LinkTask, overwrite bool) types.LinkOutcome {
	logger := e.logger.With().
		Str("source", task.Source).
		Str("target", task.Target).
		Logger()

	switch task.State.(type) {
	case types.Linked:
		logger.Debug().Msg("Target already linked")
		return types.Existed{}

	case types.Absent:
		if err := e.linker.Link(task.Source, task.Target); err != nil {
			logger.Error().Err(err).Msg("Link failed")
			return types.IOError{Err: err}
		}
		logger.Info().Msg("Link created")
		return types.Success{}

	case types.AlienNode, types.AlienLink:
		if !overwrite {
			logger.Debug().Msg("Target exists, skipping")
			return types.Skipped{}
		}

		backup, err := e.BackupTarget(task.Target)
		if err != nil {
			logger.Error().Err(err).Msg("Backup failed")
			return types.IOError{Err: err}
		}

		if err := e.linker.Link(task.Source, task.Target); err != nil {
			logger.Error().Err(err).Str("backup", backup).Msg("Link failed after backup")
			return types.IOError{Err: err}
		}
		logger.Info().Str("backup", backup).Msg("Link created over existing target")
		return types.Success{BackupPath: backup}

	default:
		panic(types.UnknownStateError(task.State))
	}
}
