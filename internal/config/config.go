// Package config loads the clblogs tool configuration.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
	"github.com/kbchulan/clblogs/internal/logfields"
	"github.com/kbchulan/clblogs/internal/render"
	"github.com/kbchulan/clblogs/internal/site"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "clblogs.yaml"

// Config represents the tool configuration.
type Config struct {
	ContentDir string        `yaml:"content_dir" toml:"content_dir"`
	Output     OutputConfig  `yaml:"output" toml:"output"`
	Logging    LoggingConfig `yaml:"logging" toml:"logging"`
	Site       SiteConfig    `yaml:"site" toml:"site"`
	Content    ContentConfig `yaml:"content" toml:"content"`
	Watch      WatchConfig   `yaml:"watch" toml:"watch"`
	// Overrides are deep-merged into the generated site document.
	Overrides map[string]any `yaml:"overrides,omitempty" toml:"overrides,omitempty"`
}

// OutputConfig controls where rendered documents go. An empty Directory
// writes to stdout.
type OutputConfig struct {
	Directory string        `yaml:"directory,omitempty" toml:"directory,omitempty"`
	Format    render.Format `yaml:"format" toml:"format"`
}

type LoggingConfig struct {
	Level  LogLevel  `yaml:"level" toml:"level"`
	Format LogFormat `yaml:"format" toml:"format"`
}

// SiteConfig overrides selected site values, typically for forks and
// preview deployments.
type SiteConfig struct {
	Base     string `yaml:"base,omitempty" toml:"base,omitempty"`
	Hostname string `yaml:"hostname,omitempty" toml:"hostname,omitempty"`
}

type ContentConfig struct {
	// GitDates fills missing page dates from the first commit of each file.
	GitDates bool `yaml:"git_dates" toml:"git_dates"`
}

type WatchConfig struct {
	Debounce string `yaml:"debounce" toml:"debounce"`
}

// Load reads the configuration at path. A missing file yields the defaults;
// `.env` files are loaded first so `${VAR}` references can be expanded.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	cfg := &Config{}
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("No configuration file, using defaults", logfields.Path(path))
	case err != nil:
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "read configuration").
			WithContext("path", path).Build()
	default:
		if err := decode(path, []byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, err
		}
	}

	applyDefaults(cfg)
	if err := normalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	var err error
	if isTOML(path) {
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	}
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "parse configuration").
			WithContext("path", path).Build()
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// ApplyTo writes the site overrides into s.
func (c *Config) ApplyTo(s *site.Config) {
	if c.Site.Base != "" {
		s.Base = c.Site.Base
	}
	if c.Site.Hostname != "" && s.Theme != nil {
		s.Theme.SetHostname(c.Site.Hostname)
	}
}
