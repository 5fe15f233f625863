package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/windlab/plant-ingest/pkg/logger"
)

// Config is the full pipeline configuration: the logger setup and
// the dataset profile describing how to locate and parse the source
// files.
type Config struct {
	Logger  logger.Config  `yaml:"logger"`
	Dataset DatasetProfile `yaml:"dataset"`
}

// Default returns the configuration for the Cubico dataset family.
func Default() *Config {
	return &Config{
		Logger: logger.Config{
			Level:       "info",
			Encoding:    "console",
			OutputPaths: []string{"stdout"},
			MaxSize:     100,
			MaxBackups:  3,
			MaxAge:      7,
			Compress:    true,
		},
		Dataset: CubicoProfile(),
	}
}

// Load reads a YAML configuration file. Fields absent from the file
// keep their defaults, so a config file only needs to name what it
// overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Dataset.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}
