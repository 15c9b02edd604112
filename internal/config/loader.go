package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the arena configuration.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file may set only the
// keys it cares about. A custom path that cannot be read, parsed or
// validated is an error; the other locations are skipped silently.
func LoadSnake(customPath string) (SnakeConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultSnakeConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile(path string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
