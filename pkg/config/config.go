// Package config loads extload's own configuration: the properties
// search path, the text encoding of discovered resources, and per-kind
// extension defaults and directives. Sources are layered with
// increasing precedence: built-in defaults, a TOML file, then
// EXTLOAD_-prefixed environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/magiconair/properties"

	"github.com/extload/extload/pkg/errors"
	"github.com/extload/extload/pkg/props"
)

// Extension configures one extension kind: its system default ordering
// and the user directive applied against it.
type Extension struct {
	Directive string   `koanf:"directive" toml:"directive" yaml:"directive"`
	Defaults  []string `koanf:"defaults" toml:"defaults" yaml:"defaults"`
}

// Config is the effective extload configuration
type Config struct {
	SearchPath []string             `koanf:"search_path" toml:"search_path" yaml:"search_path"`
	Encoding   string               `koanf:"encoding" toml:"encoding" yaml:"encoding"`
	Extensions map[string]Extension `koanf:"extensions" toml:"extensions" yaml:"extensions"`
}

// DefaultPath returns the standard location of the extload config file
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "extload", "extload.toml")
}

// Load builds the effective configuration. The file at path is skipped
// when it does not exist; an empty path means DefaultPath. Environment
// variables use EXTLOAD_ as prefix, lowercased, with double underscores
// as key separators (EXTLOAD_EXTENSIONS__FILTER__DIRECTIVE).
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	k := koanf.New(".")

	defaults := map[string]interface{}{
		"search_path": []string{"."},
		"encoding":    "utf-8",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
	}

	err := k.Load(env.Provider("EXTLOAD_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "EXTLOAD_")), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Extensions == nil {
		cfg.Extensions = make(map[string]Extension)
	}
	return &cfg, nil
}

// PropsEncoding maps the configured encoding name onto the properties
// text encoding. Unknown names fall back to UTF-8.
func (c *Config) PropsEncoding() properties.Encoding {
	switch strings.ToLower(c.Encoding) {
	case "iso-8859-1", "latin1":
		return properties.ISO_8859_1
	default:
		return properties.UTF8
	}
}

// NewPropsLoader builds a properties loader over the configured search
// path and encoding.
func (c *Config) NewPropsLoader() *props.Loader {
	return props.NewLoader(props.SearchPath(c.SearchPath)).WithEncoding(c.PropsEncoding())
}
