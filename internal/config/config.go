// Package config provides YAML-based configuration loading for the canvas
// tool.
package config

// Config is the root configuration.
type Config struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Designer DesignerConfig `yaml:"designer"`
}

// CanvasConfig controls canvas geometry defaults.
type CanvasConfig struct {
	DefaultWidth int `yaml:"default_width"` // Horizontal extent of new canvases, in grid units
}

// DesignerConfig controls the interactive designer.
type DesignerConfig struct {
	SnapFlashTicks int    `yaml:"snap_flash_ticks"` // How long adjustment notices stay visible
	ShowGrid       bool   `yaml:"show_grid"`        // Dotted background grid in the designer
	ComponentsFile string `yaml:"components_file"`  // Optional user components YAML, loaded at startup
}
