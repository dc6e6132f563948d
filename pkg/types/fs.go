package types

import (
	"io/fs"
)

// FS is the filesystem interface required for linkdot operations.
// The aggregator reads through it and the executor mutates through it.
type FS interface {
	// Inspection
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	Readlink(name string) (string, error)
	ReadFile(name string) ([]byte, error)

	// Mutation
	MkdirAll(path string, perm fs.FileMode) error
	Symlink(oldname, newname string) error
	Rename(oldpath, newpath string) error
}
