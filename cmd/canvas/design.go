package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-canvas/internal/canvas"
	"github.com/vovakirdan/tui-canvas/internal/config"
	"github.com/vovakirdan/tui-canvas/internal/platform/tui"
	"github.com/vovakirdan/tui-canvas/internal/storage"
)

var flagNewWidth int

var designCmd = &cobra.Command{
	Use:   "design [name]",
	Short: "Open the interactive canvas designer",
	Long: `Open a canvas in the interactive designer. With a name, the canvas is
loaded from storage or started fresh; without one, a browser lists the
saved canvases to pick from.

Placements snap to the canvas bounds automatically: the status bar flashes
"snapped to fit" when a commit had to adjust the proposal, and components
too wide for the canvas are rejected with a notice.

Controls:
  a            - Add a component (opens the palette)
  Arrows/hjkl  - Move the ghost box / selected item / scroll
  Enter        - Commit placement, deselect
  Tab          - Cycle selection through placed items
  x            - Delete the selected item
  g            - Toggle the alignment grid
  Ctrl+S       - Save
  Esc          - Back
  Q/Ctrl+C     - Quit

Examples:
  canvas design
  canvas design ops-dashboard
  canvas design ops-dashboard --width 80
  canvas design --db ./canvas.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDesign,
}

func init() {
	designCmd.Flags().IntVar(&flagNewWidth, "width", 0, "Width for a new canvas (0 = configured default)")
}

func runDesign(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open canvas database: %v\n", err)
		// Continue without storage - the designer still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	direct := len(args) > 0

	// Designer loop: browser -> designer -> browser, until the user quits.
	for {
		name := ""
		if direct {
			name = args[0]
		} else {
			picked, ok, browseErr := tui.RunBrowser(store, width, height)
			if browseErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", browseErr)
				os.Exit(1)
			}
			if !ok {
				return
			}
			name = picked
		}

		cv := openOrCreate(store, name, cfg)

		back, runErr := tui.RunDesigner(cv, store, cfg, width, height)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			os.Exit(1)
		}

		// Backing out of a directly opened canvas ends the command; from
		// the browser flow it loops back to the browser.
		if !back || direct {
			return
		}
	}
}

// openOrCreate loads the named canvas from storage, or starts an empty one
// when no canvas by that name is stored. Any other load error is fatal:
// entering the designer on an empty stand-in would replace the stored
// placements on the next save.
func openOrCreate(store *storage.Store, name string, cfg config.Config) *canvas.Canvas {
	if store != nil {
		cv, err := store.LoadCanvas(name)
		if err == nil {
			return cv
		}
		if !errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Error: cannot load %q: %v\n", name, err)
			os.Exit(1)
		}
	}

	width := flagNewWidth
	if width == 0 {
		width = cfg.Canvas.DefaultWidth
	}
	return canvas.New(name, width)
}
