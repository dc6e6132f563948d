package config_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/linkdot/pkg/config"
	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/testutil"
	"github.com/arthur-debert/linkdot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	testutil.NewTestEnvironment(t)

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{Mode: "dry", Format: "auto", Manifest: "linkfile.toml"}, cfg)
	assert.Equal(t, types.ModeDry, cfg.LinkMode())
}

func TestLoadPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		env       map[string]string
		overrides map[string]interface{}
		want      config.Config
	}{
		{
			name: "file_over_defaults",
			file: "mode = \"lazy\"\nmanifest = \"~/dotfiles/links.toml\"\n",
			want: config.Config{Mode: "lazy", Format: "auto", Manifest: "~/dotfiles/links.toml"},
		},
		{
			name: "env_over_file",
			file: "mode = \"lazy\"\n",
			env:  map[string]string{"LINKDOT_MODE": "force", "LINKDOT_FORMAT": "json"},
			want: config.Config{Mode: "force", Format: "json", Manifest: "linkfile.toml"},
		},
		{
			name:      "flags_over_env",
			file:      "mode = \"lazy\"\n",
			env:       map[string]string{"LINKDOT_MODE": "force"},
			overrides: map[string]interface{}{config.KeyMode: "strict"},
			want:      config.Config{Mode: "strict", Format: "auto", Manifest: "linkfile.toml"},
		},
		{
			name: "values_are_normalized",
			env:  map[string]string{"LINKDOT_MODE": " Force "},
			want: config.Config{Mode: "force", Format: "auto", Manifest: "linkfile.toml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t)
			path := filepath.Join(env.HomeDir, "config.toml")
			if tt.file != "" {
				testutil.CreateFile(t, env.HomeDir, "config.toml", tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.LoadFile(path, tt.overrides)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestLoadReadsXDGConfigHome(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	testutil.CreateFile(t, filepath.Join(env.HomeDir, ".config", "linkdot"), "config.toml", "format = \"text\"\n")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		env      map[string]string
		contains string
	}{
		{name: "malformed_file", file: "mode = ", contains: "failed to load config"},
		{name: "bad_mode", env: map[string]string{"LINKDOT_MODE": "gentle"}, contains: `invalid mode "gentle"`},
		{name: "bad_format", file: "format = \"html\"\n", contains: "expected one of auto, term, text, json"},
		{name: "empty_manifest", file: "manifest = \"\"\n", contains: "invalid manifest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t)
			path := filepath.Join(env.HomeDir, "config.toml")
			if tt.file != "" {
				testutil.CreateFile(t, env.HomeDir, "config.toml", tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.LoadFile(path, nil)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestGenerateConfigContent(t *testing.T) {
	content := config.GenerateConfigContent()

	assert.Contains(t, content, `# mode = "dry"`)
	assert.Contains(t, content, `# format = "auto"`)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			assert.True(t, strings.HasPrefix(trimmed, "#"), "line %q should be commented", line)
		}
	}
}

func TestMarshal(t *testing.T) {
	data, err := config.Marshal(&config.Config{Mode: "force", Format: "json", Manifest: "links.yaml"})
	require.NoError(t, err)
	assert.Regexp(t, `mode = ['"]force['"]`, string(data))
	assert.Regexp(t, `manifest = ['"]links\.yaml['"]`, string(data))
}
