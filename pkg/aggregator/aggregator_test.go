package aggregator_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/linkdot/pkg/aggregator"
	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/manifest"
	"github.com/arthur-debert/linkdot/pkg/testutil"
	"github.com/arthur-debert/linkdot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unified(paths ...string) manifest.Target {
	if len(paths) == 1 {
		return manifest.Unified{Destination: manifest.Single{Path: paths[0]}}
	}
	return manifest.Unified{Destination: manifest.Multi{List: paths}}
}

func TestExamineTargetState(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.Source("vimrc", "set nocompatible")
	other := env.Source("other", "")

	absent := env.Home("absent")

	node := testutil.CreateFile(t, env.HomeDir, "node", "mine")

	alien := env.Home("alien")
	testutil.CreateSymlink(t, other, alien)

	linked := env.Home("linked")
	testutil.CreateSymlink(t, source, linked)

	dangling := env.Home("dangling")
	testutil.CreateSymlink(t, filepath.Join(env.Root, "gone"), dangling)

	underFile := filepath.Join(node, "child")

	tests := []struct {
		name   string
		target string
		want   types.StateKind
	}{
		{"missing_destination", absent, types.StateAbsent},
		{"regular_file", node, types.StateAlienNode},
		{"directory", env.Root, types.StateAlienNode},
		{"link_elsewhere", alien, types.StateAlienLink},
		{"link_to_source", linked, types.StateLinked},
		{"dangling_link", dangling, types.StateAlienLink},
		{"parent_is_file", underFile, types.StateAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := aggregator.ExamineTargetState(env.FS, tt.target, source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, state.Kind())
		})
	}

	assert.Empty(t, env.FS.Mutations(), "classification must not touch the filesystem")
}

func TestExamineTargetStateKeepsMetadata(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.Source("vimrc", "")
	node := testutil.CreateFile(t, env.HomeDir, ".vimrc", "1234")
	linked := env.Home(".gvimrc")
	testutil.CreateSymlink(t, source, linked)

	state, err := aggregator.ExamineTargetState(env.FS, node, source)
	require.NoError(t, err)
	alienNode, ok := state.(types.AlienNode)
	require.True(t, ok)
	assert.Equal(t, int64(4), alienNode.Info.Size())

	state, err = aggregator.ExamineTargetState(env.FS, linked, source)
	require.NoError(t, err)
	link, ok := state.(types.Linked)
	require.True(t, ok)
	assert.NotZero(t, link.Info.Mode()&os.ModeSymlink, "link metadata must describe the link itself")
}

func TestExamineTargetStateComparesLinkTextLiterally(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.Source("vimrc", "")
	target := env.Home(".vimrc")

	// Points at the same file through a relative path
	rel, err := filepath.Rel(env.HomeDir, source)
	require.NoError(t, err)
	testutil.CreateSymlink(t, rel, target)

	state, err := aggregator.ExamineTargetState(env.FS, target, source)
	require.NoError(t, err)
	assert.Equal(t, types.StateAlienLink, state.Kind())
}

func TestExamineTargetStateRequiresAbsolutePaths(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	assert.Panics(t, func() {
		_, _ = aggregator.ExamineTargetState(env.FS, "relative", "/abs")
	})
	assert.Panics(t, func() {
		_, _ = aggregator.ExamineTargetState(env.FS, "/abs", "relative")
	})
}

func TestAggregate(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	vimrc := env.Source("vimrc", "")
	bashrc := env.Source("bashrc", "")
	nvim := env.SourceDir("nvim")

	testutil.CreateSymlink(t, vimrc, env.Home(".vimrc"))
	testutil.CreateFile(t, env.HomeDir, ".bashrc", "old")

	specs := []manifest.LinkSpec{
		{Source: "vimrc", Target: unified("~/.vimrc", "~/.gvimrc")},
		{Source: "bashrc", Target: unified("~/.bashrc")},
		{Source: "nvim", Target: manifest.Platform{Destinations: map[types.Environment]manifest.Destination{
			types.EnvironmentUnix:    manifest.Single{Path: "~/.config/nvim"},
			types.EnvironmentWindows: manifest.Single{Path: "~/AppData/Local/nvim"},
		}}},
	}

	agg := aggregator.New(env.FS, aggregator.WithHomeDir(env.HomeDir))
	tasks, err := agg.Aggregate(types.EnvironmentUnix, env.Root, specs)
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	expected := []struct {
		source string
		target string
		state  types.StateKind
	}{
		{vimrc, env.Home(".vimrc"), types.StateLinked},
		{vimrc, env.Home(".gvimrc"), types.StateAbsent},
		{bashrc, env.Home(".bashrc"), types.StateAlienNode},
		{nvim, env.Home(".config/nvim"), types.StateAbsent},
	}
	for i, want := range expected {
		assert.Equal(t, want.source, tasks[i].Source, "task %d source", i)
		assert.Equal(t, want.target, tasks[i].Target, "task %d target", i)
		assert.Equal(t, want.state, tasks[i].State.Kind(), "task %d state", i)
		assert.True(t, filepath.IsAbs(tasks[i].Target))
		require.NotNil(t, tasks[i].SourceInfo)
	}
	assert.True(t, tasks[3].SourceInfo.IsDir())
	assert.Empty(t, env.FS.Mutations())
}

func TestAggregatePlatformWithoutEntry(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.Source("profile.ps1", "")

	specs := []manifest.LinkSpec{
		{Source: "profile.ps1", Target: manifest.Platform{Destinations: map[types.Environment]manifest.Destination{
			types.EnvironmentWindows: manifest.Single{Path: "~/Documents/profile.ps1"},
		}}},
	}

	agg := aggregator.New(env.FS, aggregator.WithHomeDir(env.HomeDir))
	tasks, err := agg.Aggregate(types.EnvironmentUnix, env.Root, specs)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	tasks, err = agg.Aggregate(types.EnvironmentWindows, env.Root, specs)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, env.Home("Documents/profile.ps1"), tasks[0].Target)
}

func TestAggregateMissingSource(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.Source("vimrc", "")

	specs := []manifest.LinkSpec{
		{Source: "vimrc", Target: unified("~/.vimrc")},
		{Source: "missing", Target: unified("~/.missing")},
	}

	agg := aggregator.New(env.FS, aggregator.WithHomeDir(env.HomeDir))
	tasks, err := agg.Aggregate(types.EnvironmentUnix, env.Root, specs)
	require.Error(t, err)
	assert.Nil(t, tasks)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
	assert.Equal(t, 1, errors.GetErrorDetails(err)["link"])
}

func TestAggregateRelativeDestination(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.Source("vimrc", "")
	t.Chdir(env.HomeDir)

	specs := []manifest.LinkSpec{{Source: "vimrc", Target: unified("relative/.vimrc")}}

	tasks, err := aggregator.New(env.FS).Aggregate(types.EnvironmentUnix, env.Root, specs)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, source, tasks[0].Source)
	assert.Equal(t, env.Home("relative/.vimrc"), tasks[0].Target)
}

func TestAggregateRejectsRelativeRoot(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	_, err := aggregator.New(env.FS).Aggregate(types.EnvironmentUnix, "dotfiles", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBadPath))
}

func TestAggregateBareTildeIsRelative(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.Source("vimrc", "")
	work := testutil.CreateDir(t, filepath.Dir(env.Root), "work")
	t.Chdir(work)

	specs := []manifest.LinkSpec{{Source: "vimrc", Target: unified("~")}}

	agg := aggregator.New(env.FS, aggregator.WithHomeDir(env.HomeDir))
	tasks, err := agg.Aggregate(types.EnvironmentUnix, env.Root, specs)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, filepath.Join(work, "~"), tasks[0].Target)
	assert.NotEqual(t, env.HomeDir, tasks[0].Target)
	assert.Equal(t, types.StateAbsent, tasks[0].State.Kind())
}

func TestAggregateAbsoluteSource(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	outside := testutil.CreateFile(t, env.HomeDir, "shared/gitconfig", "[user]")

	specs := []manifest.LinkSpec{{Source: outside + "/", Target: unified("~/.gitconfig")}}

	agg := aggregator.New(env.FS, aggregator.WithHomeDir(env.HomeDir))
	tasks, err := agg.Aggregate(types.EnvironmentUnix, env.Root, specs)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, outside, tasks[0].Source)
	assert.Equal(t, env.Home(".gitconfig"), tasks[0].Target)
}

func TestAggregateAnnotatesWrappedErrors(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.Source("vimrc", "")

	lookupErr := errors.New(errors.ErrHomeDirectoryUnknown, "no home")
	agg := aggregator.New(env.FS, aggregator.WithHomeResolver(func() (string, error) {
		return "", fmt.Errorf("resolving home: %w", lookupErr)
	}))

	specs := []manifest.LinkSpec{
		{Source: "vimrc", Target: unified("/abs/.vimrc")},
		{Source: "vimrc", Target: unified("~/.vimrc")},
	}
	_, err := agg.Aggregate(types.EnvironmentUnix, env.Root, specs)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHomeDirectoryUnknown))
	assert.Equal(t, 1, errors.GetErrorDetails(err)["link"])
}
