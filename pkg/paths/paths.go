// Package paths provides centralized path handling for linkdot: home-marker
// expansion for destinations, manifest location resolution, and the XDG
// locations of the user configuration and log files.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/linkdot/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "linkdot"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"
)

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	return "", errors.Wrap(err, errors.ErrHomeDirectoryUnknown,
		"unable to determine home directory: neither os.UserHomeDir() nor HOME are available")
}

// HasHomeMarker reports whether path starts with "~/" (or "~\" with the Windows separator).
// A bare "~" and "~user/..." do not count and stay literal relative paths.
func HasHomeMarker(path string) bool {
	if len(path) < 2 || path[0] != '~' {
		return false
	}
	return path[1] == '/' || path[1] == filepath.Separator
}

// ExpandHomeWith replaces a leading "~/" of path with homeDir.
// Paths without the marker are returned unchanged.
func ExpandHomeWith(path, homeDir string) string {
	if !HasHomeMarker(path) {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

// ExpandHome expands a leading "~/" to the user's home directory.
// The home directory is only looked up when the marker is present.
func ExpandHome(path string) (string, error) {
	if !HasHomeMarker(path) {
		return path, nil
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return "", err
	}
	return ExpandHomeWith(path, homeDir), nil
}

// ResolveManifest canonicalizes the manifest location and returns it along
// with the directory containing it. Sources in the manifest are relative to
// that directory.
func ResolveManifest(manifestPath string) (string, string, error) {
	if manifestPath == "" {
		return "", "", errors.New(errors.ErrBadPath, "manifest path is empty")
	}

	expanded, err := ExpandHome(manifestPath)
	if err != nil {
		return "", "", err
	}

	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return "", "", errors.Wrapf(err, errors.ErrBadPath, "cannot make %s absolute", manifestPath)
	}

	canonical, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", "", errors.Wrapf(err, errors.ErrManifestRead, "cannot resolve manifest %s", manifestPath).
			WithDetail("path", absPath)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", "", errors.Wrapf(err, errors.ErrManifestRead, "cannot stat manifest %s", canonical)
	}
	if info.IsDir() {
		return "", "", errors.Newf(errors.ErrBadPath, "manifest path %s is a directory", canonical).
			WithDetail("path", canonical)
	}

	dir := filepath.Dir(canonical)
	if dir == canonical {
		return "", "", errors.Newf(errors.ErrBadPath, "manifest path %s has no parent directory", canonical).
			WithDetail("path", canonical)
	}

	return canonical, dir, nil
}

// ConfigFilePath returns the user configuration file location.
// It respects XDG_CONFIG_HOME if set, otherwise uses ~/.config/linkdot/config.toml
func ConfigFilePath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}
