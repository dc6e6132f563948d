package executor

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/linkdot/pkg/errors"
)

// MaxBackupIndex is the highest .bak.<i> suffix tried
const MaxBackupIndex = 99

// BackupName returns the i-th backup candidate for target
func BackupName(target string, i int) string {
	return filepath.Join(filepath.Dir(target), fmt.Sprintf("%s.bak.%d", filepath.Base(target), i))
}

// FindFreeBackupName returns the first of <target>.bak.1 to
// <target>.bak.99 that does not exist. A dangling link occupies its name.
// Candidates that cannot be inspected are passed over.
func (e *Executor) FindFreeBackupName(target string) (string, bool) {
	for i := 1; i <= MaxBackupIndex; i++ {
		candidate := BackupName(target, i)
		_, err := e.fs.Lstat(candidate)
		if err != nil && stderrors.Is(err, fs.ErrNotExist) {
			return candidate, true
		}
	}
	return "", false
}

// BackupTarget moves target to a free backup name and returns that name.
// Nothing is renamed when every candidate is taken.
func (e *Executor) BackupTarget(target string) (string, error) {
	backup, ok := e.FindFreeBackupName(target)
	if !ok {
		return "", errors.New(errors.ErrBackupNameExhausted, "cannot find suitable backup name").
			WithDetail("target", target)
	}

	if err := e.fs.Rename(target, backup); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupRename, "failed to move %s to %s", target, backup).
			WithDetail("target", target).
			WithDetail("backup", backup)
	}

	e.logger.Debug().Str("target", target).Str("backup", backup).Msg("Target backed up")
	return backup, nil
}
