package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the tool configuration.
// Search order: customPath -> ~/.tui-canvas/canvas.yaml -> ./configs/canvas.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.applyDefaults()
		return cfg, nil
	}

	// Try user config file
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.applyDefaults()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/canvas.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.applyDefaults()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCanvasYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero values with usable defaults so partial config
// files stay valid.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Canvas.DefaultWidth == 0 {
		c.Canvas.DefaultWidth = def.Canvas.DefaultWidth
	}
	if c.Designer.SnapFlashTicks == 0 {
		c.Designer.SnapFlashTicks = def.Designer.SnapFlashTicks
	}
}

// UserConfigPath returns the per-user config file path, or empty if the
// home directory is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-canvas", "canvas.yaml")
}
