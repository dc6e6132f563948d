// Package linker provides the platform capability that creates a single
// symbolic link. The capability is resolved once per run from the host
// Environment, which keeps the executor free of platform branches.
package linker

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/logging"
	"github.com/arthur-debert/linkdot/pkg/types"
	"github.com/rs/zerolog"
)

// Linker creates a symbolic link at target pointing to source, creating
// any missing parent directories of target first.
type Linker interface {
	Link(source, target string) error
}

// New returns the Linker for env
func New(env types.Environment, fsys types.FS) (Linker, error) {
	logger := logging.GetLogger("linker")

	switch env {
	case types.EnvironmentUnix:
		return &unixLinker{fs: fsys, logger: logger}, nil
	case types.EnvironmentWindows:
		return &windowsLinker{fs: fsys, logger: logger}, nil
	default:
		return nil, errors.Newf(errors.ErrUnsupportedPlatform, "no linker for environment %q", env)
	}
}

// unixLinker issues a single symlink call
type unixLinker struct {
	fs     types.FS
	logger zerolog.Logger
}

func (l *unixLinker) Link(source, target string) error {
	if err := ensureParent(l.fs, target); err != nil {
		return err
	}

	if err := l.fs.Symlink(source, target); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s to %s", target, source)
	}

	l.logger.Debug().Str("source", source).Str("target", target).Msg("Symlink created")
	return nil
}

// windowsLinker distinguishes file and directory links. The Go runtime's
// os.Symlink inspects the source and sets SYMBOLIC_LINK_FLAG_DIRECTORY when
// it is a directory, so both kinds go through FS.Symlink once the source
// has been classified.
type windowsLinker struct {
	fs     types.FS
	logger zerolog.Logger
}

// LinkKind is the kind of link created on Windows
type LinkKind string

const (
	LinkKindFile      LinkKind = "file"
	LinkKindDirectory LinkKind = "directory"
)

func (l *windowsLinker) Link(source, target string) error {
	if err := ensureParent(l.fs, target); err != nil {
		return err
	}

	kind, err := sourceKind(l.fs, source)
	if err != nil {
		return err
	}

	if err := l.fs.Symlink(source, target); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to create %s link %s to %s", kind, target, source).
			WithDetail("kind", string(kind))
	}

	l.logger.Debug().
		Str("source", source).
		Str("target", target).
		Str("kind", string(kind)).
		Msg("Symlink created")
	return nil
}

func sourceKind(fsys types.FS, source string) (LinkKind, error) {
	info, err := fsys.Stat(source)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrSourceNotFound, "cannot stat link source %s", source)
	}
	if info.IsDir() {
		return LinkKindDirectory, nil
	}
	return LinkKindFile, nil
}

// ensureParent creates the parent directory of target when it is missing
// and rejects a parent that exists but is not a directory.
func ensureParent(fsys types.FS, target string) error {
	parent := filepath.Dir(target)

	info, err := fsys.Stat(parent)
	if err == nil {
		if !info.IsDir() {
			return errors.Newf(errors.ErrParentNotDir, "parent path %s of the target is not a directory", parent).
				WithDetail("parent", parent)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot inspect parent directory %s", parent)
	}

	if err := fsys.MkdirAll(parent, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create parent directory %s", parent)
	}
	return nil
}
