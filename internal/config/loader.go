package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a ponpon mode.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default
// Files are decoded over the mode's defaults, so a file may set only the keys it changes.
func Load(gameID, customPath string) (PonponConfig, error) {
	switch gameID {
	case "ponpon_blitz":
		return LoadBlitz(customPath)
	case "ponpon":
		return LoadPonpon(customPath)
	default:
		return PonponConfig{}, fmt.Errorf("no config for game %q", gameID)
	}
}

// LoadPonpon loads the classic configuration.
func LoadPonpon(customPath string) (PonponConfig, error) {
	return load("ponpon.yaml", customPath, defaultPonponYAML, DefaultPonponConfig)
}

// LoadBlitz loads the blitz configuration.
func LoadBlitz(customPath string) (PonponConfig, error) {
	return load("ponpon_blitz.yaml", customPath, defaultBlitzYAML, DefaultBlitzConfig)
}

func load(filename, customPath string, embedded []byte, fallback func() PonponConfig) (PonponConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath, fallback); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", filename), fallback); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.Validate() != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile decodes an optional config file. Missing, malformed or
// invalid files are skipped so the next source can be tried.
func tryFile(path string, fallback func() PonponConfig) (PonponConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PonponConfig{}, false
	}
	cfg := fallback()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PonponConfig{}, false
	}
	if cfg.Validate() != nil {
		return PonponConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *PonponConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.Level = LevelForPreset(preset)
}
