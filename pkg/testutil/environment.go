package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/linkdot/pkg/filesystem"
	"github.com/arthur-debert/linkdot/pkg/types"
)

// TestEnvironment provides an isolated manifest root and home directory
type TestEnvironment struct {
	// Root is the directory holding the manifest and the link sources
	Root string

	// HomeDir is the directory "~" expands to
	HomeDir string

	// FS is the recording wrapper around the OS filesystem
	FS *RecordingFS

	t *testing.T
}

// NewTestEnvironment creates the directories and redirects HOME and the
// XDG variables into the temp directory.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tempDir := t.TempDir()
	// Resolve symlinked temp roots (macOS /var -> /private/var) so paths
	// compare equal to what the filesystem reports.
	if resolved, err := filepath.EvalSymlinks(tempDir); err == nil {
		tempDir = resolved
	}

	env := &TestEnvironment{
		Root:    CreateDir(t, tempDir, "dotfiles"),
		HomeDir: CreateDir(t, tempDir, "home"),
		FS:      NewRecordingFS(filesystem.NewOS()),
		t:       t,
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(env.HomeDir, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(env.HomeDir, ".local", "state"))

	return env
}

// Source creates a regular source file under Root and returns its absolute path
func (env *TestEnvironment) Source(name, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.Root, name, content)
}

// SourceDir creates a source directory under Root and returns its absolute path
func (env *TestEnvironment) SourceDir(name string) string {
	env.t.Helper()
	return CreateDir(env.t, env.Root, name)
}

// Home joins name onto HomeDir
func (env *TestEnvironment) Home(name string) string {
	return filepath.Join(env.HomeDir, name)
}

// Task builds a task the way the aggregator would, for executor tests
func (env *TestEnvironment) Task(source, target string, state types.TargetState) types.LinkTask {
	env.t.Helper()

	info, err := env.FS.Stat(source)
	if err != nil {
		env.t.Fatalf("Failed to stat source %s: %v", source, err)
	}
	return types.LinkTask{
		Source:     source,
		SourceInfo: info,
		Target:     target,
		State:      state,
	}
}
