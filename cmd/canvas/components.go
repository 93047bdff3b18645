package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
)

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List all available components",
	Long: `Shows the component catalog with each component's size preferences.

Sizes are given as WIDTHxHEIGHT in grid units. A component's minimum width
decides whether it can be placed at all: if it exceeds the canvas width, the
component does not fit anywhere on that canvas.`,
	Run: runComponents,
}

func runComponents(cmd *cobra.Command, args []string) {
	loadConfig() // Pulls user-defined components into the catalog

	defs := catalog.List()

	if len(defs) == 0 {
		fmt.Println("No components available.")
		return
	}

	fmt.Println("Available components:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, d := range defs {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
		if len(d.Title) > maxTitleLen {
			maxTitleLen = len(d.Title)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-8s  %-8s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Default", "Min", "Max")
	fmt.Printf("  %-*s  %-*s  %-8s  %-8s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-------", "---", "---")

	// Print components
	for _, d := range defs {
		fmt.Printf("  %-*s  %-*s  %-8s  %-8s  %s\n",
			maxIDLen, d.ID,
			maxTitleLen, d.Title,
			formatSize(&d.Prefs.Default),
			formatSize(d.Prefs.Min),
			formatSize(d.Prefs.Max),
		)
	}

	fmt.Println()
	fmt.Println("Run 'canvas place <id> --at X,Y' to try a placement.")
}

// formatSize renders a size preference, "-" when absent.
func formatSize(s *core.Size) string {
	if s == nil {
		return "-"
	}
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
