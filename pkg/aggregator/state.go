package aggregator

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/linkdot/pkg/types"
)

// ExamineTargetState classifies target relative to source. Both paths must
// be absolute.
//
// The link text is compared byte for byte with source, without resolving
// either side.
func ExamineTargetState(fsys types.FS, target, source string) (types.TargetState, error) {
	if !filepath.IsAbs(target) {
		panic("linkdot: ExamineTargetState called with relative target " + target)
	}
	if !filepath.IsAbs(source) {
		panic("linkdot: ExamineTargetState called with relative source " + source)
	}

	info, err := fsys.Lstat(target)
	if err != nil {
		if notExist(err) {
			return types.Absent{}, nil
		}
		return nil, err
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return types.AlienNode{Info: info}, nil
	}

	dest, err := fsys.Readlink(target)
	if err != nil {
		return nil, err
	}
	if dest != source {
		return types.AlienLink{Info: info}, nil
	}
	return types.Linked{Info: info}, nil
}

// notExist treats a non-directory path component like a missing file: the
// destination cannot exist, and linking will report the bad parent.
func notExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) || stderrors.Is(err, syscall.ENOTDIR)
}
