package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
)

var checkCmd = &cobra.Command{
	Use:   "check <component>",
	Short: "Check whether a component can fit on a canvas",
	Long: `Checks a component's minimum width against the canvas width.

A component fits when its minimum width does not exceed the canvas width;
equal widths fit exactly. Components without a minimum always fit. Exits
with code 0 when the component fits and 2 when it does not.

Examples:
  canvas check banner
  canvas check banner --canvas-width 20
  canvas check clock --canvas-width 12`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&flagCanvasWidth, "canvas-width", 0, "Canvas width in grid units (0 = default)")
}

func runCheck(cmd *cobra.Command, args []string) {
	loadConfig()

	def, err := catalog.Get(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown component %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'canvas components' to see available components.")
		os.Exit(1)
	}

	canvasWidth := flagCanvasWidth
	if canvasWidth == 0 {
		canvasWidth = core.DefaultCanvasWidth
	}

	minWidth := def.Prefs.MinWidth()
	if core.CanFit(minWidth, canvasWidth) {
		fmt.Printf("%q fits: minimum width %d <= canvas width %d\n", def.ID, minWidth, canvasWidth)
		return
	}

	fmt.Printf("%q does not fit: minimum width %d > canvas width %d\n", def.ID, minWidth, canvasWidth)
	os.Exit(2)
}
