package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/logging"
	"github.com/arthur-debert/linkdot/pkg/paths"
	"github.com/arthur-debert/linkdot/pkg/types"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "LINKDOT_"

// Configuration keys, also used as flag override keys
const (
	KeyMode     = "mode"
	KeyFormat   = "format"
	KeyManifest = "manifest"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the effective configuration
type Config struct {
	Mode     string `koanf:"mode" toml:"mode" validate:"oneof=dry strict lazy force"`
	Format   string `koanf:"format" toml:"format" validate:"oneof=auto term text json"`
	Manifest string `koanf:"manifest" toml:"manifest" validate:"required"`
}

// LinkMode returns Mode as a types.Mode
func (c *Config) LinkMode() types.Mode {
	return types.Mode(c.Mode)
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load reads the configuration from the user config file location.
// overrides holds explicitly set flags, keyed like the config file.
func Load(overrides map[string]interface{}) (*Config, error) {
	return LoadFile(paths.ConfigFilePath(), overrides)
}

// LoadFile is Load with an explicit user config path. A missing file is
// not an error.
func LoadFile(userConfigPath string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	// 2. User file
	if userConfigPath != "" {
		if _, err := os.Stat(userConfigPath); err == nil {
			if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", userConfigPath).
					WithDetail("path", userConfigPath)
			}
			logger.Debug().Str("path", userConfigPath).Msg("User config loaded")
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Flags
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("mode", cfg.Mode).
		Str("format", cfg.Format).
		Str("manifest", cfg.Manifest).
		Msg("Configuration loaded")

	return &cfg, nil
}

func validate(cfg *Config) error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if stderrors.As(err, &ves) {
		fe := ves[0]
		key := strings.ToLower(fe.Field())
		return errors.Newf(errors.ErrConfigLoad, "invalid %s %q (expected %s)", key, fe.Value(), expected(fe)).
			WithDetail("key", key)
	}
	return errors.Wrap(err, errors.ErrConfigLoad, "invalid configuration")
}

func expected(fe validator.FieldError) string {
	if fe.Tag() == "oneof" {
		return "one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "a value"
}
