package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings for a calc invocation.
type Config struct {
	Name      string `yaml:"name" env:"CALC_NAME"`
	LogLevel  string `yaml:"log_level" env:"CALC_LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"CALC_LOG_FORMAT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Name:      "calculator",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load starts from Default, applies the YAML file at path (if path is non-empty)
// and then any CALC_* environment variables. The result is not validated, callers
// apply their own overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse config %s", path)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}

	return cfg, nil
}

// Validate checks that the logging settings are ones we understand.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
