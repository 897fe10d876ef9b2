package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/takeoff-arcade/internal/platform/web"
)

var (
	flagWebAddr string
	flagWebDir  string
	flagSSHHost string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser build over HTTP",
	Long: `Serve the WebAssembly build of the game.

--dir must contain takeoff.wasm and wasm_exec.js, plus an optional
resources/ directory with sprites. Build it with:

  GOOS=js GOARCH=wasm go build -o web/takeoff.wasm ./cmd/takeoff-gl
  cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/

Examples:
  takeoff web
  takeoff web --addr :9000 --dir ./dist`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	defaults := web.DefaultConfig()
	webCmd.Flags().StringVar(&flagWebAddr, "addr", defaults.Address, "HTTP listen address (host:port)")
	webCmd.Flags().StringVar(&flagWebDir, "dir", defaults.Dir, "Directory with the wasm build")
	webCmd.Flags().StringVar(&flagSSHHost, "ssh-host", defaults.SSHHost, "SSH address shown on the page")
}

func runWeb(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("takeoff-web", false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	server, err := web.NewServer(web.Config{
		Address: flagWebAddr,
		Dir:     flagWebDir,
		SSHHost: flagSSHHost,
	}, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving %s on http://%s\n", flagWebDir, flagWebAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx); err != nil {
		fail("server: %v", err)
	}
}
