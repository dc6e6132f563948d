package testutil

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/arthur-debert/linkdot/pkg/types"
)

// RecordingFS wraps a types.FS and records every mutating call.
// Reads pass through unrecorded.
type RecordingFS struct {
	inner types.FS

	mu        sync.Mutex
	mutations []string
}

// NewRecordingFS wraps inner
func NewRecordingFS(inner types.FS) *RecordingFS {
	return &RecordingFS{inner: inner}
}

// Mutations returns the recorded mutating calls in order, formatted as
// "op arg [arg]".
func (r *RecordingFS) Mutations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.mutations))
	copy(out, r.mutations)
	return out
}

// Reset forgets the recorded calls
func (r *RecordingFS) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations = nil
}

func (r *RecordingFS) record(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations = append(r.mutations, fmt.Sprintf(format, args...))
}

func (r *RecordingFS) Stat(name string) (fs.FileInfo, error) {
	return r.inner.Stat(name)
}

func (r *RecordingFS) Lstat(name string) (fs.FileInfo, error) {
	return r.inner.Lstat(name)
}

func (r *RecordingFS) Readlink(name string) (string, error) {
	return r.inner.Readlink(name)
}

func (r *RecordingFS) ReadFile(name string) ([]byte, error) {
	return r.inner.ReadFile(name)
}

func (r *RecordingFS) MkdirAll(path string, perm fs.FileMode) error {
	r.record("mkdir %s", path)
	return r.inner.MkdirAll(path, perm)
}

func (r *RecordingFS) Symlink(oldname, newname string) error {
	r.record("symlink %s %s", oldname, newname)
	return r.inner.Symlink(oldname, newname)
}

func (r *RecordingFS) Rename(oldpath, newpath string) error {
	r.record("rename %s %s", oldpath, newpath)
	return r.inner.Rename(oldpath, newpath)
}

var _ types.FS = (*RecordingFS)(nil)
