package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output struct {
		Dir string `yaml:"dir"` // default extraction directory
	} `yaml:"output"`
	Ignore []string `yaml:"ignore"` // directory names skipped when packing
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.Output.Dir = "."
	cfg.Ignore = []string{".git", "vendor", "node_modules"}
	return cfg
}

// LoadConfig reads the YAML config at path, falling back to defaults
// when the file is absent. Environment variables win over the file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if out := os.Getenv("TXTAR_OUT"); out != "" {
		cfg.Output.Dir = out
	}

	return cfg, nil
}
