// Package config handles configuration management for linkdot.
// It layers, from lowest to highest precedence, the embedded defaults, the
// user file at $XDG_CONFIG_HOME/linkdot/config.toml, LINKDOT_* environment
// variables and explicitly set command-line flags.
package config
