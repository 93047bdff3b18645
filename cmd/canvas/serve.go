package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-canvas/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the canvas designer over SSH",
	Long: `Serve the canvas designer over SSH so a team can edit shared layouts.

Every connection lands in the browser over the shared canvas database and
opens canvases in the full designer. A canvas has one editor at a time:
opening one that is already being edited keeps you in the browser with a
notice.

The host key comes from --host-key, or is generated at
~/.tui-canvas/host_key on the first run.

Examples:
  canvas serve                      # Listen on :23234
  canvas serve --ssh :2222          # Another port
  canvas serve --host-key ./key     # Pinned host key
  canvas serve --db ./canvas.db     # Shared layout database

Then from any machine: ssh <host> -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "Listen address for the SSH server (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (generated when empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Minutes of inactivity before a session is dropped")
}

func runServe(_ *cobra.Command, _ []string) {
	appCfg := loadConfig()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		App:         appCfg,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot start the server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Canvas designer listening on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh <host> -p 23234")
	fmt.Println("Ctrl+C stops the server")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
