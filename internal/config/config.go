// Package config loads sleephdr configuration from defaults, an optional
// YAML file and SLEEP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"github.com/aneshas/gosleep/core"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"strings"
)

// EnvPrefix is the prefix of environment variables overriding config values
const EnvPrefix = "SLEEP"

// Config represents sleephdr config
type Config struct {
	// StrictPadding rejects headers whose padding is not zero filled
	StrictPadding bool `mapstructure:"strict_padding"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig represents logging config
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Human reports whether logs should use the console writer
func (c LoggingConfig) Human() bool {
	return c.Format == "text"
}

// Decode returns the header decoder config
func (c Config) Decode() core.Config {
	return core.Config{
		StrictPadding: c.StrictPadding,
	}
}

// DefaultConfig represents default sleephdr config
var DefaultConfig = Config{
	StrictPadding: false,
	Logging: LoggingConfig{
		Level:  "info",
		Format: "text",
	},
}

// FlagKeys maps command line flag names to config keys
var FlagKeys = map[string]string{
	"strict":     "strict_padding",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

// Load loads configuration. Precedence, highest first:
// flags that were set, environment variables, the config file at path (if any), defaults.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := New()

	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}

			err := v.BindPFlag(key, f)
			if err != nil {
				return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)

		err := v.ReadInConfig()
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return Unmarshal(v)
}

// New returns a viper instance with defaults and environment bindings set up
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("strict_padding", DefaultConfig.StrictPadding)
	v.SetDefault("logging.level", DefaultConfig.Logging.Level)
	v.SetDefault("logging.format", DefaultConfig.Logging.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")

	return v
}

// Unmarshal decodes and validates the config held by v
func Unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, Validate(cfg)
}

// Validate validates the config
func Validate(cfg Config) error {
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging format %q (expected text or json)", cfg.Logging.Format)
	}

	if cfg.Logging.Level == "" {
		return errors.New("logging level should not be empty")
	}

	return nil
}

