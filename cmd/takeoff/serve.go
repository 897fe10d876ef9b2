package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/takeoff-arcade/internal/platform/tui"
	"github.com/vovakirdan/takeoff-arcade/internal/takeoff"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeAssets string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game; sessions never share state.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.takeoff/host_key

Examples:
  takeoff serve                           # Listen on :23234 with auto-generated key
  takeoff serve --ssh :2222               # Listen on port 2222
  takeoff serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeAssets, "assets", "", "Directory image paths are resolved against")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig(flagServeAssets)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("takeoff-ssh", false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.TickRate = flagFPS
	serverCfg.Game = cfg
	serverCfg.Assets = takeoff.DirAssets{Resolve: cfg.AssetPath}

	server, err := tui.NewSSHServer(serverCfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting takeoff SSH server on %s\n", serverCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
