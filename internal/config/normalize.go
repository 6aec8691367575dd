package config

import (
	"time"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
	"github.com/kbchulan/clblogs/internal/render"
)

func normalize(cfg *Config) error {
	format, err := render.ParseFormat(string(cfg.Output.Format))
	if err != nil {
		return err
	}
	cfg.Output.Format = format

	level, err := logLevelNormalizer.NormalizeWithValidation(string(cfg.Logging.Level))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "invalid logging configuration").Build()
	}
	cfg.Logging.Level = level
	cfg.Logging.Format = logFormatNormalizer.Normalize(string(cfg.Logging.Format))

	d, err := time.ParseDuration(cfg.Watch.Debounce)
	if err != nil || d <= 0 {
		return ferrors.ConfigError("watch.debounce must be a positive duration").
			WithContext("debounce", cfg.Watch.Debounce).Build()
	}
	return nil
}

// DebounceDuration returns the parsed watch debounce.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return defaultDebounce
	}
	return d
}
