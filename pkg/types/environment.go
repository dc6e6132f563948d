package types

import (
	"runtime"

	"github.com/arthur-debert/linkdot/pkg/errors"
)

// Environment identifies the link semantics of the running platform
type Environment string

const (
	// EnvironmentUnix covers every platform with POSIX symlinks
	EnvironmentUnix Environment = "unix"

	// EnvironmentWindows distinguishes file and directory symlinks
	EnvironmentWindows Environment = "windows"
)

// String returns the manifest spelling of the environment
func (e Environment) String() string {
	return string(e)
}

// ParseEnvironment maps a manifest platform key to an Environment.
// Matching is exact and case-sensitive.
func ParseEnvironment(s string) (Environment, error) {
	switch Environment(s) {
	case EnvironmentUnix:
		return EnvironmentUnix, nil
	case EnvironmentWindows:
		return EnvironmentWindows, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown platform %q", s).
			WithDetail("platform", s)
	}
}

// EnvironmentFromGOOS classifies a GOOS value into its link family
func EnvironmentFromGOOS(goos string) (Environment, error) {
	switch goos {
	case "windows":
		return EnvironmentWindows, nil
	case "plan9", "js", "wasip1":
		return "", errors.Newf(errors.ErrUnsupportedPlatform, "platform %s has no supported link family", goos).
			WithDetail("goos", goos)
	default:
		return EnvironmentUnix, nil
	}
}

// DetectEnvironment returns the Environment of the host
func DetectEnvironment() (Environment, error) {
	return EnvironmentFromGOOS(runtime.GOOS)
}
