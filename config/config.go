package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	Logger LoggerConfig

	// API - query assembly
	API APIConfig

	// CLI - batch rendering
	CLI CLIConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// APIConfig is the configuration of the autocomplete layout
type APIConfig struct {
	// CustomBoosts maps a target (source, layer) to value -> boost.
	CustomBoosts map[string]map[string]float64
	Autocomplete AutocompleteConfig
}

// AutocompleteConfig is the configuration of the autocomplete endpoint
type AutocompleteConfig struct {
	ExcludeAddressLength int
}

// CLIConfig is the configuration for the command line renderer
type CLIConfig struct {
	Workers int
}

// Load loads configuration using Viper. An empty path searches the default
// locations; a missing file there is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("autocomplete-config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/autocomplete/")
	}

	// Enable environment variable override
	v.SetEnvPrefix("AUTOCOMPLETE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Logger
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// API
	boosts, err := customBoosts(v.Get("api.custom_boosts"))
	if err != nil {
		return nil, err
	}
	cfg.API.CustomBoosts = boosts
	cfg.API.Autocomplete.ExcludeAddressLength = v.GetInt("api.autocomplete.exclude_address_length")

	// CLI
	cfg.CLI.Workers = v.GetInt("cli.workers")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", false)

	// API
	v.SetDefault("api.autocomplete.exclude_address_length", 0)

	// CLI
	v.SetDefault("cli.workers", 4)
}

// customBoosts reads the two-level boost table. Viper lowercases keys, so
// source and layer names are matched in lower case.
func customBoosts(raw any) (map[string]map[string]float64, error) {
	if raw == nil {
		return nil, nil
	}
	targets, err := cast.ToStringMapE(raw)
	if err != nil {
		return nil, fmt.Errorf("api.custom_boosts: %w", err)
	}

	keys := make([]string, 0, len(targets))
	for k := range targets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	boosts := make(map[string]map[string]float64, len(targets))
	for _, target := range keys {
		values, err := cast.ToStringMapE(targets[target])
		if err != nil {
			return nil, fmt.Errorf("api.custom_boosts.%s: %w", target, err)
		}
		boosts[target] = make(map[string]float64, len(values))
		for value, b := range values {
			boost, err := cast.ToFloat64E(b)
			if err != nil {
				return nil, fmt.Errorf("api.custom_boosts.%s.%s: %w", target, value, err)
			}
			boosts[target][value] = boost
		}
	}
	return boosts, nil
}

func validate(cfg *Config) error {
	switch cfg.Logger.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("logger.encoding must be console or json, got %q", cfg.Logger.Encoding)
	}

	if cfg.API.Autocomplete.ExcludeAddressLength < 0 {
		return fmt.Errorf("api.autocomplete.exclude_address_length must not be negative")
	}

	if cfg.CLI.Workers <= 0 {
		return fmt.Errorf("cli.workers must be greater than 0")
	}

	return nil
}
