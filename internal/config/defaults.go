package config

import (
	"time"

	"github.com/kbchulan/clblogs/internal/render"
)

const (
	defaultContentDir = "src"
	defaultDebounce   = 500 * time.Millisecond
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.ContentDir == "" {
		cfg.ContentDir = defaultContentDir
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = render.FormatYAML
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = defaultDebounce.String()
	}
}
