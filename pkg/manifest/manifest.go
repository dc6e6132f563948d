// Package manifest loads the declarative list of links.
//
// A manifest is a TOML (or YAML) document with a list of link entries:
//
//	[[link]]
//	source = "vim/vimrc"
//	target = "~/.vimrc"
//
//	[[link]]
//	source = "git/gitconfig"
//	target = ["~/.gitconfig", "~/.config/git/config"]
//
//	[[link]]
//	source = "shell/profile"
//	target.unix = "~/.profile"
//	target.windows = ["~/Documents/profile.ps1"]
//
// Sources are relative to the directory holding the manifest. Targets are
// either unified (one destination or a list) or keyed by platform.
package manifest

import (
	"github.com/arthur-debert/linkdot/pkg/types"
)

// Manifest is the parsed document
type Manifest struct {
	Links []LinkSpec
}

// LinkSpec is one manifest entry
type LinkSpec struct {
	// Source is relative to the manifest directory
	Source string

	// Target is Unified or Platform
	Target Target
}

// Target is the destination part of a link.
// The variants are Unified and Platform.
type Target interface {
	isTarget()
}

// Unified applies to every platform
type Unified struct {
	Destination Destination
}

// Platform maps each supported environment to its destinations.
// Environments without an entry get no link.
type Platform struct {
	Destinations map[types.Environment]Destination
}

func (Unified) isTarget()  {}
func (Platform) isTarget() {}

// Destination is one or more destination paths.
// The variants are Single and Multi.
type Destination interface {
	Paths() []string
	isDestination()
}

// Single is one destination path
type Single struct {
	Path string
}

// Multi is a list of destination paths
type Multi struct {
	List []string
}

// Paths returns the single path as a one-element list
func (s Single) Paths() []string { return []string{s.Path} }

// Paths returns a copy of the list
func (m Multi) Paths() []string {
	out := make([]string, len(m.List))
	copy(out, m.List)
	return out
}

func (Single) isDestination() {}
func (Multi) isDestination()  {}

// DestinationsFor returns the destination paths target declares for env,
// in manifest order. A Platform target without an entry for env yields nil.
func DestinationsFor(target Target, env types.Environment) []string {
	switch t := target.(type) {
	case Unified:
		return t.Destination.Paths()
	case Platform:
		dest, ok := t.Destinations[env]
		if !ok {
			return nil
		}
		return dest.Paths()
	default:
		panic("linkdot: unknown manifest target type")
	}
}
