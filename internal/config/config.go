// Package config loads the runtime configuration from flags, environment
// variables (PADVIEW_*), and an optional padview.yaml, in that precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Addr     string `mapstructure:"addr"`
	TickRate int    `mapstructure:"tick-rate"` // poll ticks per second
	LogLevel string `mapstructure:"log-level"`
}

// TickInterval converts the configured tick rate into the bridge's ticker
// period.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Load parses the given command-line arguments (without the program name)
// and merges them over environment variables and the optional config file.
func Load(args []string) (Config, error) {
	flags := pflag.NewFlagSet("padview", pflag.ContinueOnError)
	flags.String("addr", ":8080", "HTTP listen address")
	flags.Int("tick-rate", 60, "poll ticks per second")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	configFile := flags.String("config", "", "path to a config file (default: ./padview.yaml if present)")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}
	v.SetEnvPrefix("padview")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		v.SetConfigName("padview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.TickRate < 1 || c.TickRate > 1000 {
		return fmt.Errorf("tick-rate must be between 1 and 1000, got %d", c.TickRate)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}
