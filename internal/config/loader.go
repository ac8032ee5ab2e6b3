package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "crates.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.crates/config.yaml -> ./configs/crates.yaml -> embedded default -> Default().
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports where the configuration came
// from: a file path, "embedded" or "default".
func LoadWithSource(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		path := ExpandPath(customPath)
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", FileName)
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, local, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), "default", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg.Normalize()
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crates", "config.yaml")
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

// Resolved returns a copy of the paths with ~ expanded.
func (p PathsConfig) Resolved() PathsConfig {
	return PathsConfig{
		Levels: ExpandPath(p.Levels),
		Scores: ExpandPath(p.Scores),
		DB:     ExpandPath(p.DB),
		Log:    ExpandPath(p.Log),
	}
}
