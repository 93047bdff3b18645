// canvas is a terminal dashboard designer for laying out rectangular
// components on a fixed-width grid canvas.
//
// Usage:
//
//	canvas components        - List available components
//	canvas place <component> - Resolve a placement from the command line
//	canvas check <component> - Check whether a component fits a canvas
//	canvas design [name]     - Open the interactive designer
//	canvas layouts           - Manage saved canvases
//	canvas serve             - Start SSH server for remote designing
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.tui-canvas/canvas.db)
//	--config <path>  - Set config file path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/config"

	// Import widgets to register them
	_ "github.com/vovakirdan/tui-canvas/internal/widgets/banner"
	_ "github.com/vovakirdan/tui-canvas/internal/widgets/clock"
	_ "github.com/vovakirdan/tui-canvas/internal/widgets/gauge"
	_ "github.com/vovakirdan/tui-canvas/internal/widgets/label"
	_ "github.com/vovakirdan/tui-canvas/internal/widgets/logpanel"
	_ "github.com/vovakirdan/tui-canvas/internal/widgets/sparkline"
)

var (
	// Global flags
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "canvas",
	Short: "Terminal dashboard designer with automatic boundary snapping",
	Long: `canvas lays out rectangular dashboard components on a fixed-width grid.
Proposed placements are resolved against the canvas bounds automatically:
sizes clamp to the canvas and to each component's min/max preferences, and
positions snap back inside the horizontal edges. The canvas grows downward
without limit.

Available commands:
  components - Show the component catalog
  place      - Resolve one placement and print where it lands
  check      - Check whether a component can fit at all
  design     - Interactive designer (local terminal)
  layouts    - List, show, and delete saved canvases
  serve      - SSH server for remote designing

Examples:
  canvas components
  canvas place gauge --at 40,0
  canvas design ops-dashboard
  canvas layouts show ops-dashboard
  canvas serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-canvas/canvas.db", "Path to canvas database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config file")

	// Add subcommands
	rootCmd.AddCommand(componentsCmd)
	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(designCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the tool configuration and registers any user-defined
// components it points at. Config problems degrade to defaults with a
// warning; they never block the command.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if cfg.Designer.ComponentsFile != "" {
		if _, err := catalog.LoadFile(cfg.Designer.ComponentsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load user components: %v\n", err)
		}
	}

	return cfg
}
