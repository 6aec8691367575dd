package config

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
)

// Example returns the configuration written by Init.
func Example() *Config {
	cfg := Default()
	cfg.Output.Directory = "dist/config"
	cfg.Content.GitDates = true
	cfg.Site.Hostname = "${CLBLOGS_HOSTNAME}"
	return cfg
}

// Init writes an example configuration file. The encoding follows the file
// extension.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).Build()
	}

	var buf bytes.Buffer
	var err error
	if isTOML(path) {
		err = toml.NewEncoder(&buf).Encode(Example())
	} else {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(Example()); err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "marshal example configuration").Build()
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write configuration").
			WithContext("path", path).Build()
	}
	return nil
}
