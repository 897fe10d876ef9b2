// takeoff is a small arcade game: pick an aircraft, dodge the hazards on the
// field and take off above the altitude line as fast as you can.
//
// Usage:
//
//	takeoff play             - Play in this terminal
//	takeoff serve            - Start SSH server for remote play
//	takeoff web              - Serve the browser build over HTTP
//	takeoff aircraft         - List aircraft and hazards
//	takeoff config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible hazards
//	--log-level <level>   - debug, info, warn, error (default: warn)
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "takeoff",
	Short: "Haneda Takeoff - dodge the hazards and get airborne",
	Long: `Haneda Takeoff is a small arcade game. Pick an aircraft, steer around
the hazards on the field and press SPACE once you are above the takeoff line.
The faster you take off, the higher your score.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  web       - Serve the browser build
  aircraft  - List aircraft and hazards
  config    - Print the effective configuration

Examples:
  takeoff play
  takeoff play --assets ./assets --sound
  takeoff serve --ssh :2222
  takeoff web --addr :8080 --dir ./web
  takeoff config > ~/.takeoff/configs/takeoff.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(aircraftCmd)
	rootCmd.AddCommand(configCmd)
}
