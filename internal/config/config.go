package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	PokeAPI PokeAPIConfig `mapstructure:"pokeapi"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	UI      UIConfig      `mapstructure:"ui"`
}

// PokeAPIConfig holds upstream API configuration
type PokeAPIConfig struct {
	BaseURL              string   `mapstructure:"base_url"`
	Timeout              int      `mapstructure:"timeout"`
	PageSize             int      `mapstructure:"page_size"`
	MaxRequestsPerSecond int      `mapstructure:"max_requests_per_second"`
	Proxies              []string `mapstructure:"proxies"`
	UserAgent            string   `mapstructure:"user_agent"`
}

// RequestTimeout returns the per-request timeout as a duration
func (c PokeAPIConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// LogConfig holds logrus settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig holds the prometheus endpoint settings. Empty Addr disables it.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// UIConfig holds card grid settings
type UIConfig struct {
	Columns   int `mapstructure:"columns"`
	CardWidth int `mapstructure:"card_width"`
}

// Load loads configuration from YAML file with environment variable overrides.
// With an empty path config.yaml is looked up in the current directory and may be absent.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values viper cannot enforce on its own
func (c *Config) Validate() error {
	if c.PokeAPI.BaseURL == "" {
		return fmt.Errorf("pokeapi.base_url must not be empty")
	}
	if c.PokeAPI.PageSize <= 0 {
		return fmt.Errorf("pokeapi.page_size must be positive, got %d", c.PokeAPI.PageSize)
	}
	if c.PokeAPI.Timeout <= 0 {
		return fmt.Errorf("pokeapi.timeout must be positive, got %d", c.PokeAPI.Timeout)
	}
	if c.PokeAPI.MaxRequestsPerSecond < 0 {
		return fmt.Errorf("pokeapi.max_requests_per_second must not be negative")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("pokeapi.timeout", 30)
	v.SetDefault("pokeapi.page_size", 20)
	v.SetDefault("pokeapi.max_requests_per_second", 0)
	v.SetDefault("pokeapi.proxies", []string{})
	v.SetDefault("pokeapi.user_agent", "pokedex-browser/1.0")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("metrics.addr", "")

	v.SetDefault("ui.columns", 0)
	v.SetDefault("ui.card_width", 44)
}
