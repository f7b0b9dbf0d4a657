package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.padtris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
// Values missing from a file keep their defaults. The difficulty preset named
// in the file is applied before returning.
func LoadTetris(customPath string) (TetrisConfig, error) {
	return LoadTetrisPreset(customPath, "")
}

// LoadTetrisPreset is LoadTetris with a preset that replaces the one named
// in the file. An empty preset keeps the file's.
func LoadTetrisPreset(customPath string, preset DifficultyPreset) (TetrisConfig, error) {
	cfg, err := load("tetris.yaml", customPath, defaultTetrisYAML, DefaultTetrisConfig)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		cfg.Difficulty = preset
	}
	p, ok := ParseDifficulty(string(cfg.Difficulty))
	if !ok {
		return cfg, fmt.Errorf("config: unknown difficulty %q", cfg.Difficulty)
	}
	ApplyTetrisPreset(&cfg, p)
	return cfg, cfg.Validate()
}

// load resolves one config file along the search order. Every candidate is
// decoded on top of the hardcoded defaults.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := defaults()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		candidate := defaults()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".padtris", "configs", filename)
}
