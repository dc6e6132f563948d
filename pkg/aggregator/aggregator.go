package aggregator

import (
	stderrors "errors"
	"path/filepath"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/logging"
	"github.com/arthur-debert/linkdot/pkg/manifest"
	"github.com/arthur-debert/linkdot/pkg/paths"
	"github.com/arthur-debert/linkdot/pkg/types"
	"github.com/rs/zerolog"
)

// Aggregator turns manifest entries into classified tasks
type Aggregator struct {
	fs      types.FS
	homeDir func() (string, error)
	logger  zerolog.Logger
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithHomeDir fixes the directory "~/" expands to instead of looking it up
func WithHomeDir(home string) Option {
	return WithHomeResolver(func() (string, error) { return home, nil })
}

// WithHomeResolver replaces the home directory lookup. It is only called
// for destinations starting with "~/".
func WithHomeResolver(resolve func() (string, error)) Option {
	return func(a *Aggregator) {
		a.homeDir = resolve
	}
}

// WithLogger replaces the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// New creates an Aggregator reading through fsys
func New(fsys types.FS, opts ...Option) *Aggregator {
	a := &Aggregator{
		fs:      fsys,
		homeDir: paths.GetHomeDirectory,
		logger:  logging.GetLogger("aggregator"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate expands every spec for env and classifies the resulting
// destinations, in manifest order. root must be absolute; sources are
// joined onto it.
//
// An absolute source is used as is. A missing source aborts the whole
// aggregation. A platform-keyed target
// without an entry for env contributes no task.
func (a *Aggregator) Aggregate(env types.Environment, root string, specs []manifest.LinkSpec) ([]types.LinkTask, error) {
	if !filepath.IsAbs(root) {
		return nil, errors.Newf(errors.ErrBadPath, "root directory %s is not absolute", root).
			WithDetail("root", root)
	}

	done := logging.LogOperationStart(a.logger, "aggregate")
	defer done()

	var tasks []types.LinkTask
	for i, spec := range specs {
		specTasks, err := a.expand(env, root, spec)
		if err != nil {
			var le *errors.LinkdotError
			if stderrors.As(err, &le) {
				le.WithDetail("link", i)
			}
			return nil, err
		}
		tasks = append(tasks, specTasks...)
	}

	a.logger.Debug().
		Str("environment", env.String()).
		Int("links", len(specs)).
		Int("tasks", len(tasks)).
		Msg("Link tasks aggregated")

	return tasks, nil
}

func (a *Aggregator) expand(env types.Environment, root string, spec manifest.LinkSpec) ([]types.LinkTask, error) {
	source := filepath.Join(root, spec.Source)
	if filepath.IsAbs(spec.Source) {
		source = filepath.Clean(spec.Source)
	}

	sourceInfo, err := a.fs.Stat(source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceNotFound, "link source %s does not exist", source).
			WithDetail("source", source)
	}

	destinations := manifest.DestinationsFor(spec.Target, env)
	if len(destinations) == 0 {
		a.logger.Debug().
			Str("source", source).
			Str("environment", env.String()).
			Msg("No destination for this platform, skipping")
		return nil, nil
	}

	tasks := make([]types.LinkTask, 0, len(destinations))
	for _, dest := range destinations {
		target, err := a.resolveDestination(dest)
		if err != nil {
			return nil, err
		}

		state, err := ExamineTargetState(a.fs, target, source)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTargetInspect, "cannot inspect target %s", target).
				WithDetail("target", target)
		}

		a.logger.Trace().
			Str("source", source).
			Str("target", target).
			Str("state", string(state.Kind())).
			Msg("Target classified")

		tasks = append(tasks, types.LinkTask{
			Source:     source,
			SourceInfo: sourceInfo,
			Target:     target,
			State:      state,
		})
	}
	return tasks, nil
}

// resolveDestination expands a leading "~/", then makes the path absolute.
// Relative destinations, a bare "~" included, resolve against the working
// directory, not the manifest root.
func (a *Aggregator) resolveDestination(dest string) (string, error) {
	if paths.HasHomeMarker(dest) {
		home, err := a.homeDir()
		if err != nil {
			return "", err
		}
		dest = paths.ExpandHomeWith(dest, home)
	}

	abs, err := filepath.Abs(dest)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBadPath, "cannot make destination %s absolute", dest)
	}
	return abs, nil
}
