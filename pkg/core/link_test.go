package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/linkdot/pkg/core"
	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/testutil"
	"github.com/arthur-debert/linkdot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleLink = `
[[link]]
source = "a"
target = "~/b"
`

func setup(t *testing.T, manifest string) (*testutil.TestEnvironment, string) {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	env.Source("a", "content of a")
	return env, env.Source("linkfile.toml", manifest)
}

func run(t *testing.T, env *testutil.TestEnvironment, manifestPath string, mode types.Mode) *core.LinkResult {
	t.Helper()
	res, err := core.Link(core.LinkOptions{
		ManifestPath: manifestPath,
		Mode:         mode,
		FS:           env.FS,
		Environment:  types.EnvironmentUnix,
		HomeDir:      env.HomeDir,
	})
	require.NoError(t, err)
	return res
}

func TestScenarioAbsentDestination(t *testing.T) {
	env, manifestPath := setup(t, singleLink)
	source := filepath.Join(env.Root, "a")
	target := env.Home("b")

	t.Run("dry_reports_absent", func(t *testing.T) {
		res := run(t, env, manifestPath, types.ModeDry)

		dry, ok := res.Result.(types.DryResult)
		require.True(t, ok, "got %T", res.Result)
		require.Len(t, dry.Tasks, 1)
		assert.Equal(t, types.Absent{}, dry.Tasks[0].State)
		assert.Equal(t, source, dry.Tasks[0].Source)
		assert.Equal(t, target, dry.Tasks[0].Target)
		assert.Empty(t, env.FS.Mutations())
		assert.False(t, res.Failed())
		assert.Equal(t, env.Root, res.Root)
	})

	t.Run("strict_links", func(t *testing.T) {
		res := run(t, env, manifestPath, types.ModeStrict)

		completed, ok := res.Result.(types.Completed)
		require.True(t, ok, "got %T", res.Result)
		require.Len(t, completed.Records, 1)
		assert.Equal(t, types.Success{}, completed.Records[0].Outcome)
		assert.Equal(t, source, testutil.ReadLink(t, target))
		assert.Equal(t, 1, res.Stats.LinksCreated)
		assert.NotEmpty(t, res.RunID)
	})
}

func TestScenarioAlreadyLinked(t *testing.T) {
	env, manifestPath := setup(t, singleLink)
	source := filepath.Join(env.Root, "a")
	testutil.CreateSymlink(t, source, env.Home("b"))

	t.Run("dry_reports_linked", func(t *testing.T) {
		env.FS.Reset()
		res := run(t, env, manifestPath, types.ModeDry)

		dry := res.Result.(types.DryResult)
		require.Len(t, dry.Tasks, 1)
		assert.Equal(t, types.StateLinked, dry.Tasks[0].State.Kind())
		assert.Empty(t, env.FS.Mutations())
	})

	t.Run("force_reports_existed", func(t *testing.T) {
		env.FS.Reset()
		res := run(t, env, manifestPath, types.ModeForce)

		completed := res.Result.(types.Completed)
		require.Len(t, completed.Records, 1)
		assert.Equal(t, types.Existed{}, completed.Records[0].Outcome)
		assert.Empty(t, env.FS.Mutations())
	})

	t.Run("lazy_drops_it", func(t *testing.T) {
		env.FS.Reset()
		res := run(t, env, manifestPath, types.ModeLazy)

		completed := res.Result.(types.Completed)
		assert.Empty(t, completed.Records)
		assert.Empty(t, env.FS.Mutations())
	})
}

func TestScenarioRegularFileAtDestination(t *testing.T) {
	env, manifestPath := setup(t, singleLink)
	source := filepath.Join(env.Root, "a")
	target := testutil.CreateFile(t, env.HomeDir, "b", "precious")

	t.Run("strict_refuses", func(t *testing.T) {
		env.FS.Reset()
		res := run(t, env, manifestPath, types.ModeStrict)

		failed, ok := res.Result.(types.PreconditionFailed)
		require.True(t, ok, "got %T", res.Result)
		assert.Equal(t, "some of the targets exist", failed.Reason)
		assert.True(t, res.Failed())
		assert.Empty(t, env.FS.Mutations())
		assert.Equal(t, "precious", testutil.ReadFile(t, target))
	})

	t.Run("force_backs_up_and_links", func(t *testing.T) {
		env.FS.Reset()
		res := run(t, env, manifestPath, types.ModeForce)

		completed := res.Result.(types.Completed)
		require.Len(t, completed.Records, 1)
		assert.Equal(t, types.Success{BackupPath: target + ".bak.1"}, completed.Records[0].Outcome)
		assert.Equal(t, source, testutil.ReadLink(t, target))
		assert.Equal(t, "precious", testutil.ReadFile(t, target+".bak.1"))
		assert.Equal(t, []string{
			"rename " + target + " " + target + ".bak.1",
			"symlink " + source + " " + target,
		}, env.FS.Mutations())
		assert.Equal(t, 1, res.Stats.Backups)
	})
}

func TestHomeExpansionForEveryMode(t *testing.T) {
	for _, mode := range types.AllModes {
		t.Run(mode.String(), func(t *testing.T) {
			env, manifestPath := setup(t, `
[[link]]
source = "a"
target = "~/.config/x"
`)
			res := run(t, env, manifestPath, mode)

			want := env.Home(".config/x")
			switch r := res.Result.(type) {
			case types.DryResult:
				require.Len(t, r.Tasks, 1)
				assert.Equal(t, want, r.Tasks[0].Target)
			case types.Completed:
				require.Len(t, r.Records, 1)
				assert.Equal(t, want, r.Records[0].Task.Target)
				assert.Equal(t, filepath.Join(env.Root, "a"), testutil.ReadLink(t, want))
			default:
				t.Fatalf("unexpected result %T", res.Result)
			}
		})
	}
}

func TestSortedOutput(t *testing.T) {
	env, manifestPath := setup(t, `
[[link]]
source = "a"
target = ["~/absent", "~/node", "~/linked"]
`)
	testutil.CreateFile(t, env.HomeDir, "node", "")
	testutil.CreateSymlink(t, filepath.Join(env.Root, "a"), env.Home("linked"))

	res := run(t, env, manifestPath, types.ModeDry)

	dry := res.Result.(types.DryResult)
	require.Len(t, dry.Tasks, 3)
	assert.Equal(t, env.Home("linked"), dry.Tasks[0].Target)
	assert.Equal(t, env.Home("node"), dry.Tasks[1].Target)
	assert.Equal(t, env.Home("absent"), dry.Tasks[2].Target)
}

func TestLinkErrors(t *testing.T) {
	t.Run("missing_source_aborts_before_mutation", func(t *testing.T) {
		env, manifestPath := setup(t, singleLink+`
[[link]]
source = "missing"
target = "~/missing"
`)
		_, err := core.Link(core.LinkOptions{
			ManifestPath: manifestPath,
			Mode:         types.ModeForce,
			FS:           env.FS,
			Environment:  types.EnvironmentUnix,
			HomeDir:      env.HomeDir,
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
		assert.Empty(t, env.FS.Mutations())
		assert.False(t, testutil.Exists(t, env.Home("b")))
	})

	t.Run("manifest_is_a_directory", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		_, err := core.Link(core.LinkOptions{ManifestPath: env.Root, FS: env.FS})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrBadPath))
	})

	t.Run("missing_manifest", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		_, err := core.Link(core.LinkOptions{ManifestPath: env.Home("nope.toml"), FS: env.FS})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestRead))
	})

	t.Run("invalid_manifest", func(t *testing.T) {
		env, manifestPath := setup(t, "[[link]]\nsource = \"a\"\n")
		_, err := core.Link(core.LinkOptions{ManifestPath: manifestPath, FS: env.FS})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestInvalid))
	})

	t.Run("unknown_mode", func(t *testing.T) {
		env, manifestPath := setup(t, singleLink)
		_, err := core.Link(core.LinkOptions{ManifestPath: manifestPath, Mode: "gentle", FS: env.FS})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestLinkFailedTaskMarksRun(t *testing.T) {
	env, manifestPath := setup(t, `
[[link]]
source = "a"
target = "~/file/child"
`)
	testutil.CreateFile(t, env.HomeDir, "file", "")

	res := run(t, env, manifestPath, types.ModeLazy)

	assert.True(t, res.Failed())
	assert.Equal(t, 1, res.Stats.Failed)
}

func TestDefaultModeIsDry(t *testing.T) {
	env, manifestPath := setup(t, singleLink)

	res := run(t, env, manifestPath, "")

	assert.Equal(t, types.ModeDry, res.Mode)
	assert.IsType(t, types.DryResult{}, res.Result)
}

func TestDryRunOnDefaultFilesystem(t *testing.T) {
	env, manifestPath := setup(t, singleLink)

	res, err := core.Link(core.LinkOptions{ManifestPath: manifestPath, HomeDir: env.HomeDir})
	require.NoError(t, err)

	dry, ok := res.Result.(types.DryResult)
	require.True(t, ok, "got %T", res.Result)
	require.Len(t, dry.Tasks, 1)
	assert.Equal(t, types.Absent{}, dry.Tasks[0].State)
	assert.False(t, testutil.Exists(t, env.Home("b")))
}

func TestForceNeverTouchesHomeForBareTilde(t *testing.T) {
	env, manifestPath := setup(t, "[[link]]\nsource = \"a\"\ntarget = \"~\"\n")
	work := testutil.CreateDir(t, filepath.Dir(env.Root), "work")
	t.Chdir(work)

	res := run(t, env, manifestPath, types.ModeForce)
	require.False(t, res.Failed())

	assert.Equal(t, filepath.Join(env.Root, "a"), testutil.ReadLink(t, filepath.Join(work, "~")))
	assert.False(t, testutil.Exists(t, env.HomeDir+".bak.1"))
	info, err := os.Lstat(env.HomeDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
