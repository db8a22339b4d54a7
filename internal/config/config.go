package config

import (
	"fmt"
	"os"

	"github.com/Lumos-Labs-HQ/seedgen/internal/utils"
	"github.com/spf13/viper"
)

const (
	FileName          = "seedgen.config.json"
	DefaultDatabase   = "eventix"
	DefaultOutputPath = "azure/database/seed.sql"
)

type Config struct {
	Database    string `json:"database" mapstructure:"database"`
	FixturePath string `json:"fixture_path,omitempty" mapstructure:"fixture_path"` // empty: use the bundled seed set
	OutputPath  string `json:"output_path" mapstructure:"output_path"`
}

func Default() *Config {
	return &Config{
		Database:   DefaultDatabase,
		OutputPath: DefaultOutputPath,
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	defaults := Default()
	if cfg.Database == "" {
		cfg.Database = defaults.Database
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = defaults.OutputPath
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if !utils.IsValidIdentifier(c.Database) {
		return fmt.Errorf("invalid database name: %q", c.Database)
	}

	if c.OutputPath == "" {
		return fmt.Errorf("output_path cannot be empty")
	}

	if info, err := os.Stat(c.OutputPath); err == nil && info.IsDir() {
		return fmt.Errorf("output_path %s is a directory", c.OutputPath)
	}

	return nil
}

func IsInitialized() bool {
	_, err := os.Stat(FileName)
	return err == nil
}
