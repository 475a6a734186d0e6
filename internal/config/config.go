package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	DefaultHeaderRow = 1
	DefaultSuffix    = "_formatted"
	DefaultLogLevel  = "info"
)

type Config struct {
	Format FormatConfig `toml:"format"`
	Log    LogConfig    `toml:"log"`
}

type FormatConfig struct {
	HeaderRow int    `toml:"header_row"`
	Suffix    string `toml:"suffix"`
}

type LogConfig struct {
	Directory string `toml:"directory"`
	Level     string `toml:"level"`
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	return &Config{
		Format: FormatConfig{
			HeaderRow: DefaultHeaderRow,
			Suffix:    DefaultSuffix,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// LoadConfig loads configuration from the specified config file path.
// Missing keys fall back to the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	// Set defaults if missing
	if config.Format.HeaderRow == 0 {
		config.Format.HeaderRow = DefaultHeaderRow
	}
	if config.Format.Suffix == "" {
		config.Format.Suffix = DefaultSuffix
	}
	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return &config, nil
}

// Validate rejects values the formatter cannot act on
func (c *Config) Validate() error {
	if c.Format.HeaderRow < 1 {
		return fmt.Errorf("format.header_row must be >= 1, got %d", c.Format.HeaderRow)
	}
	if c.Format.Suffix == "" {
		return fmt.Errorf("format.suffix must not be empty")
	}
	if c.Format.Suffix != filepath.Base(c.Format.Suffix) {
		return fmt.Errorf("format.suffix must not contain path separators: %q", c.Format.Suffix)
	}
	return nil
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	err = encoder.Encode(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
