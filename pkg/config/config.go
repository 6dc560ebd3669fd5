package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"filialstore/pkg/types"
)

// Load reads the yaml config file. A missing config is not an error; the
// defaults (json backend, default data path) apply.
func Load(path string) (types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Config{}, nil
		}
		return types.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var config types.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to load config: %w", err)
	}

	return config, nil
}

func Dump(path string, config types.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
