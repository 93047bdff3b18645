package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
)

var (
	flagAt          string
	flagCanvasWidth int
	flagJSON        bool
)

var placeCmd = &cobra.Command{
	Use:   "place <component>",
	Short: "Resolve one placement and print where it lands",
	Long: `Runs the placement pipeline for a single component and prints the
resolved position and size.

The proposed position may lie anywhere, including outside the canvas or at
negative coordinates; the result is snapped back inside the horizontal
bounds and below the top edge. A component whose minimum width exceeds the
canvas width cannot be placed at any position; the command then prints
"cannot place" and exits with code 2, so scripts can branch on the outcome.

Examples:
  canvas place gauge --at 10,2
  canvas place gauge --at 40,0                 # snaps left to fit
  canvas place banner --at 0,0 --canvas-width 30
  canvas place label --at -5,-3 --json`,
	Args: cobra.ExactArgs(1),
	Run:  runPlace,
}

func init() {
	placeCmd.Flags().StringVar(&flagAt, "at", "0,0", "Proposed position as X,Y")
	placeCmd.Flags().IntVar(&flagCanvasWidth, "canvas-width", 0, "Canvas width in grid units (0 = default)")
	placeCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
}

// placeResult is the JSON shape of a placement outcome.
type placeResult struct {
	Component        string `json:"component"`
	CanvasWidth      int    `json:"canvas_width"`
	Placed           bool   `json:"placed"`
	X                int    `json:"x"`
	Y                int    `json:"y"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	SizeAdjusted     bool   `json:"size_adjusted"`
	PositionAdjusted bool   `json:"position_adjusted"`
}

func runPlace(cmd *cobra.Command, args []string) {
	loadConfig()

	def, err := catalog.Get(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown component %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'canvas components' to see available components.")
		os.Exit(1)
	}

	x, y, err := parseAt(flagAt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	canvasWidth := flagCanvasWidth
	if canvasWidth == 0 {
		canvasWidth = core.DefaultCanvasWidth
	}

	placed, ok := core.Resolve(def.Prefs, x, y, canvasWidth)

	if flagJSON {
		result := placeResult{
			Component:   def.ID,
			CanvasWidth: canvasWidth,
			Placed:      ok,
		}
		if ok {
			result.X = placed.X
			result.Y = placed.Y
			result.Width = placed.Width
			result.Height = placed.Height
			result.SizeAdjusted = placed.SizeAdjusted
			result.PositionAdjusted = placed.PositionAdjusted
		}
		out, marshalErr := json.MarshalIndent(result, "", "  ")
		if marshalErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", marshalErr)
			os.Exit(1)
		}
		fmt.Println(string(out))
		if !ok {
			os.Exit(2)
		}
		return
	}

	if !ok {
		fmt.Printf("cannot place: %q needs at least %d columns, canvas has %d\n",
			def.ID, def.Prefs.MinWidth(), canvasWidth)
		os.Exit(2)
	}

	fmt.Printf("placed %q at (%d, %d), size %dx%d (canvas width %d)\n",
		def.ID, placed.X, placed.Y, placed.Width, placed.Height, canvasWidth)
	if placed.SizeAdjusted {
		fmt.Printf("  size adjusted from %dx%d\n", def.Prefs.Default.Width, def.Prefs.Default.Height)
	}
	if placed.PositionAdjusted {
		fmt.Printf("  position adjusted from (%d, %d)\n", x, y)
	}
}

// parseAt parses an "X,Y" flag value. Both coordinates may be negative.
func parseAt(s string) (x, y int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid position %q, expected X,Y", s)
	}
	x, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid X coordinate %q", parts[0])
	}
	y, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid Y coordinate %q", parts[1])
	}
	return x, y, nil
}
