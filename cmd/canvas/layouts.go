package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-canvas/internal/canvas"
	"github.com/vovakirdan/tui-canvas/internal/storage"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List saved canvases",
	Long: `Shows all canvases in the database with their size and item count.

Subcommands render, inspect, or delete a single canvas.

Examples:
  canvas layouts
  canvas layouts show ops-dashboard
  canvas layouts stats ops-dashboard
  canvas layouts delete old-draft`,
	Run: runLayouts,
}

var layoutsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Render a saved canvas to the terminal",
	Long: `Draws the saved canvas as plain text: every component's frame, title,
and content, exactly as the designer shows it.`,
	Args: cobra.ExactArgs(1),
	Run:  runLayoutsShow,
}

var layoutsStatsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Show placement statistics for a saved canvas",
	Long: `Prints aggregate numbers for a canvas: item count, how many placements
were adjusted to fit, and the occupied height.`,
	Args: cobra.ExactArgs(1),
	Run:  runLayoutsStats,
}

var layoutsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved canvas",
	Args:  cobra.ExactArgs(1),
	Run:   runLayoutsDelete,
}

func init() {
	layoutsCmd.AddCommand(layoutsShowCmd)
	layoutsCmd.AddCommand(layoutsStatsCmd)
	layoutsCmd.AddCommand(layoutsDeleteCmd)
}

// openStore opens the canvas database or exits; the layouts commands are
// meaningless without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening canvas database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runLayouts(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	infos, err := store.ListCanvases()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing canvases: %v\n", err)
		os.Exit(1)
	}

	if len(infos) == 0 {
		fmt.Println("No canvases saved yet.")
		fmt.Println()
		fmt.Println("Run 'canvas design <name>' to start one.")
		return
	}

	// Calculate name column width
	maxNameLen := 4 // "Name" header
	for _, info := range infos {
		if len(info.Name) > maxNameLen {
			maxNameLen = len(info.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxNameLen, "Name", "Width", "Items", "Updated")
	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxNameLen, "----", "-----", "-----", "-------")

	// Print canvases
	for _, info := range infos {
		fmt.Printf("  %-*s  %-6d  %-6d  %s\n",
			maxNameLen, info.Name, info.Width, info.Items,
			info.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runLayoutsShow(cmd *cobra.Command, args []string) {
	loadConfig() // User components may be needed to render

	store := openStore()
	defer store.Close()

	cv, err := store.LoadCanvas(args[0])
	if err != nil {
		exitNotFound(err, args[0])
	}

	fmt.Printf("%s (%d columns, %d items)\n\n", cv.Name, cv.Width, cv.Len())
	fmt.Println(canvas.Draw(cv, 0).String())
}

func runLayoutsStats(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	stats, err := store.Stats(args[0])
	if err != nil {
		exitNotFound(err, args[0])
	}

	fmt.Printf("Canvas: %s\n", stats.Name)
	fmt.Println()
	fmt.Printf("  Width:              %d columns\n", stats.Width)
	fmt.Printf("  Height:             %d rows\n", stats.Height)
	fmt.Printf("  Items:              %d\n", stats.Items)
	fmt.Printf("  Size adjusted:      %d\n", stats.SizeAdjusted)
	fmt.Printf("  Position adjusted:  %d\n", stats.PositionAdjusted)
}

func runLayoutsDelete(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if err := store.DeleteCanvas(args[0]); err != nil {
		exitNotFound(err, args[0])
	}

	fmt.Printf("deleted %q\n", args[0])
}

// exitNotFound prints a storage error and exits, with a friendlier message
// for the missing-canvas case.
func exitNotFound(err error, name string) {
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no canvas named %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'canvas layouts' to see saved canvases.")
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
