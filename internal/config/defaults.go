package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-canvas/internal/core"
)

//go:embed defaults/canvas.yaml
var defaultCanvasYAML []byte

// DefaultConfig returns the hardcoded default configuration, the last
// fallback when even the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Canvas: CanvasConfig{
			DefaultWidth: core.DefaultCanvasWidth,
		},
		Designer: DesignerConfig{
			SnapFlashTicks: 24,
			ShowGrid:       false,
			ComponentsFile: "",
		},
	}
}

// DefaultYAML returns the embedded default YAML, used to seed a user
// config file.
func DefaultYAML() []byte {
	return defaultCanvasYAML
}
