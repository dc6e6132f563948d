package types

import (
	"strings"

	"github.com/arthur-debert/linkdot/pkg/errors"
)

// Mode is the execution policy applied to the classified tasks
type Mode string

const (
	// ModeDry only reports the state of the targets
	ModeDry Mode = "dry"

	// ModeStrict links only when no target exists at all
	ModeStrict Mode = "strict"

	// ModeLazy fills missing targets and ignores existing ones
	ModeLazy Mode = "lazy"

	// ModeForce moves existing targets aside to <name>.bak.<n> and links over them
	ModeForce Mode = "force"
)

// AllModes lists the modes in the order they are documented
var AllModes = []Mode{ModeDry, ModeStrict, ModeLazy, ModeForce}

// String returns the flag spelling of the mode
func (m Mode) String() string {
	return string(m)
}

// ParseMode parses a mode name. Matching ignores case and surrounding blanks.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDry:
		return ModeDry, nil
	case ModeStrict:
		return ModeStrict, nil
	case ModeLazy:
		return ModeLazy, nil
	case ModeForce:
		return ModeForce, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown mode %q (expected dry, strict, lazy or force)", s).
			WithDetail("mode", s)
	}
}
