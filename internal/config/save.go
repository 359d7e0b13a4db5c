package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the configuration as YAML to the given path, creating
// parent directories as needed. An empty path uses the default
// location. Returns the path written.
func Save(cfg *Config, path string) (string, error) {
	if path == "" {
		var err error
		path, err = GetConfigFile()
		if err != nil {
			return "", fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return expandedPath, nil
}
