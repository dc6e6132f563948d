package manifest

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/logging"
	"github.com/arthur-debert/linkdot/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger("manifest")

// Format is the serialization of a manifest file
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// rawManifest mirrors the document before target shapes are resolved
type rawManifest struct {
	Links []rawLink `toml:"link" yaml:"link" validate:"required,dive"`
}

type rawLink struct {
	Source string      `toml:"source" yaml:"source" validate:"required"`
	Target interface{} `toml:"target" yaml:"target" validate:"required"`
}

// FormatForPath picks the format from the file extension. Anything that is
// not .yaml or .yml is read as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads and parses the manifest at path
func Load(fsys types.FS, path string) (*Manifest, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "failed to read manifest %s", path).
			WithDetail("path", path)
	}

	m, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Int("links", len(m.Links)).
		Msg("Manifest loaded")

	return m, nil
}

// Parse decodes data in the given format, validates it and resolves the
// target shapes.
func Parse(data []byte, format Format) (*Manifest, error) {
	var raw rawManifest

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to parse YAML manifest")
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to parse TOML manifest")
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown manifest format %q", format)
	}

	if err := validateRaw(&raw); err != nil {
		return nil, err
	}

	m := &Manifest{Links: make([]LinkSpec, 0, len(raw.Links))}
	for i, link := range raw.Links {
		target, err := convertTarget(link.Target)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestInvalid, "link[%d] (%s): invalid target", i, link.Source).
				WithDetail("link", i)
		}
		m.Links = append(m.Links, LinkSpec{Source: link.Source, Target: target})
	}

	return m, nil
}
