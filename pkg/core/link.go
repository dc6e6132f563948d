package core

import (
	"github.com/arthur-debert/linkdot/pkg/aggregator"
	"github.com/arthur-debert/linkdot/pkg/executor"
	"github.com/arthur-debert/linkdot/pkg/filesystem"
	"github.com/arthur-debert/linkdot/pkg/linker"
	"github.com/arthur-debert/linkdot/pkg/logging"
	"github.com/arthur-debert/linkdot/pkg/manifest"
	"github.com/arthur-debert/linkdot/pkg/paths"
	"github.com/arthur-debert/linkdot/pkg/stats"
	"github.com/arthur-debert/linkdot/pkg/types"
)

// LinkOptions configures a run
type LinkOptions struct {
	// ManifestPath is the manifest file, relative paths and "~" accepted
	ManifestPath string

	// Mode is the policy to apply. Empty means dry.
	Mode types.Mode

	// FS is the filesystem to work on. Nil means the OS filesystem, read-only
	// in dry mode.
	FS types.FS

	// Environment overrides host detection when set
	Environment types.Environment

	// HomeDir overrides the directory "~" expands to in destinations
	HomeDir string
}

// LinkResult is everything a run produced
type LinkResult struct {
	RunID        string
	ManifestPath string
	Root         string
	Environment  types.Environment
	Mode         types.Mode
	Result       types.LinkageResult
	Stats        stats.Stats
}

// Failed reports whether the run should end with a non-zero status: a strict
// precondition failure or at least one failed task.
func (r *LinkResult) Failed() bool {
	switch res := r.Result.(type) {
	case types.PreconditionFailed:
		return true
	case types.Completed:
		return res.HasFailures()
	default:
		return false
	}
}

// Link runs the whole pipeline
func Link(opts LinkOptions) (*LinkResult, error) {
	runID := logging.NewRunID()
	logger := logging.WithRun(logging.GetLogger("core.link"), runID)

	mode := opts.Mode
	if mode == "" {
		mode = types.ModeDry
	}
	mode, err := types.ParseMode(string(mode))
	if err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
		if mode == types.ModeDry {
			fsys = filesystem.NewReadOnly()
		}
	}

	logger.Info().
		Str("manifest", opts.ManifestPath).
		Str("mode", mode.String()).
		Msg("Starting link run")

	manifestPath, root, err := paths.ResolveManifest(opts.ManifestPath)
	if err != nil {
		logger.Error().Err(err).Msg("Cannot resolve manifest location")
		return nil, err
	}

	m, err := manifest.Load(fsys, manifestPath)
	if err != nil {
		logger.Error().Err(err).Str("manifest", manifestPath).Msg("Cannot load manifest")
		return nil, err
	}
	logger.Debug().
		Str("manifest", manifestPath).
		Str("root", root).
		Int("links", len(m.Links)).
		Msg("Manifest loaded")

	env := opts.Environment
	if env == "" {
		env, err = types.DetectEnvironment()
		if err != nil {
			return nil, err
		}
	}

	l, err := linker.New(env, fsys)
	if err != nil {
		return nil, err
	}

	aggOpts := []aggregator.Option{
		aggregator.WithLogger(logging.WithRun(logging.GetLogger("aggregator"), runID)),
	}
	if opts.HomeDir != "" {
		aggOpts = append(aggOpts, aggregator.WithHomeDir(opts.HomeDir))
	}

	tasks, err := aggregator.New(fsys, aggOpts...).Aggregate(env, root, m.Links)
	if err != nil {
		logger.Error().Err(err).Msg("Aggregation failed")
		return nil, err
	}
	aggregator.SortTasks(tasks)

	exec := executor.New(fsys, l).WithLogger(logging.WithRun(logging.GetLogger("executor"), runID))
	result := exec.Run(mode, tasks)

	lr := &LinkResult{
		RunID:        runID,
		ManifestPath: manifestPath,
		Root:         root,
		Environment:  env,
		Mode:         mode,
		Result:       result,
		Stats:        stats.FromResult(result),
	}

	logger.Info().
		Str("environment", env.String()).
		Str("summary", lr.Stats.String()).
		Bool("failed", lr.Failed()).
		Msg("Link run finished")

	return lr, nil
}
