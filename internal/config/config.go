// Package config provides configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"basecalc/core/conversion"
	"basecalc/core/table"
	"basecalc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Conversion contains defaults for the convert command
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`

	// Table contains defaults for the table command
	Table TableConfig `json:"table" yaml:"table"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Server contains settings for the serve command
	Server ServerConfig `json:"server" yaml:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// ConversionConfig contains conversion defaults
type ConversionConfig struct {
	// MaxSteps caps the digits produced for a fractional part
	MaxSteps int `json:"max_steps" yaml:"max_steps"`

	// DecimalPlaces is the precision of the decimal approximation, 0 disables it
	DecimalPlaces int32 `json:"decimal_places" yaml:"decimal_places"`
}

// TableConfig contains table report defaults
type TableConfig struct {
	// MaxSteps caps fractional digits per cell
	MaxSteps int `json:"max_steps" yaml:"max_steps"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// NoColor disables ANSI colors
	NoColor bool `json:"no_color" yaml:"no_color"`

	// ShowSteps prints the derivation, not just the result
	ShowSteps bool `json:"show_steps" yaml:"show_steps"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" yaml:"addr"`

	// RedisAddr enables the result cache when set
	RedisAddr string `json:"redis_addr,omitempty" yaml:"redis_addr,omitempty"`

	// RedisPassword authenticates to Redis
	RedisPassword string `json:"redis_password,omitempty" yaml:"redis_password,omitempty"`

	// RedisDB selects the Redis database
	RedisDB int `json:"redis_db" yaml:"redis_db"`

	// CacheTTL is a duration such as "10m"; empty keeps entries forever
	CacheTTL string `json:"cache_ttl,omitempty" yaml:"cache_ttl,omitempty"`

	// MaxStepsLimit is the largest max_steps a client may request
	MaxStepsLimit int `json:"max_steps_limit" yaml:"max_steps_limit"`

	// MaxDecimalPlaces is the largest decimal_places a client may request
	MaxDecimalPlaces int32 `json:"max_decimal_places" yaml:"max_decimal_places"`

	// MaxTableEntries caps the entries of one /table request
	MaxTableEntries int `json:"max_table_entries" yaml:"max_table_entries"`
}

// TTL parses CacheTTL
func (s ServerConfig) TTL() (time.Duration, error) {
	if s.CacheTTL == "" {
		return 0, nil
	}
	return time.ParseDuration(s.CacheTTL)
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Conversion: ConversionConfig{
			MaxSteps:      conversion.DefaultMaxSteps,
			DecimalPlaces: 0,
		},
		Table: TableConfig{
			MaxSteps: table.DefaultMaxSteps,
		},
		Output: OutputConfig{
			NoColor:   false,
			ShowSteps: true,
		},
		Server: ServerConfig{
			Addr:             ":8080",
			MaxStepsLimit:    1000,
			MaxDecimalPlaces: 100,
			MaxTableEntries:  36,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.basecalc.yaml
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".basecalc.yaml"
	}
	return filepath.Join(homeDir, ".basecalc.yaml")
}

// Load reads a configuration file over the defaults. A missing file yields
// the defaults. Files ending in .json are JSON, anything else is YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, config)
	} else {
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Validate rejects settings no command can use
func (c *Config) Validate() error {
	if c.Conversion.MaxSteps < 0 {
		return fmt.Errorf("conversion.max_steps must not be negative, got %d", c.Conversion.MaxSteps)
	}
	if c.Conversion.DecimalPlaces < 0 {
		return fmt.Errorf("conversion.decimal_places must not be negative, got %d", c.Conversion.DecimalPlaces)
	}
	if c.Table.MaxSteps < 0 {
		return fmt.Errorf("table.max_steps must not be negative, got %d", c.Table.MaxSteps)
	}
	if c.Server.MaxStepsLimit < 1 {
		return fmt.Errorf("server.max_steps_limit must be positive, got %d", c.Server.MaxStepsLimit)
	}
	if c.Server.MaxDecimalPlaces < 0 {
		return fmt.Errorf("server.max_decimal_places must not be negative, got %d", c.Server.MaxDecimalPlaces)
	}
	if c.Server.MaxTableEntries < 1 {
		return fmt.Errorf("server.max_table_entries must be positive, got %d", c.Server.MaxTableEntries)
	}
	if ttl, err := c.Server.TTL(); err != nil {
		return fmt.Errorf("server.cache_ttl: %w", err)
	} else if ttl < 0 {
		return fmt.Errorf("server.cache_ttl must not be negative, got %s", ttl)
	}
	return nil
}

// Save saves configuration to a file in the format its extension names
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
