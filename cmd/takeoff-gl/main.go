// takeoff-gl runs the game in a graphical window at 800x600. Built with
// GOOS=js GOARCH=wasm it runs in a browser canvas instead; see "takeoff web".
//
// Usage:
//
//	takeoff-gl [--config path] [--assets dir] [--seed n] [--sound]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/takeoff-arcade/internal/audio"
	"github.com/vovakirdan/takeoff-arcade/internal/config"
	"github.com/vovakirdan/takeoff-arcade/internal/platform/pixel"
)

var (
	flagConfig   string
	flagAssets   string
	flagSeed     int64
	flagSound    bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "takeoff-gl",
	Short: "Haneda Takeoff in a graphical window",
	Long: `Play Haneda Takeoff in a window.

Controls:
  Up/Down        - Pick an aircraft (menu), climb/descend (flying)
  Left/Right     - Move sideways
  Enter          - Start, or return to the menu after a game
  Space          - Attempt takeoff (must be above the dashed line)

Sprites are read from --assets (or assets.root in the config).
Missing images are drawn as simple shapes.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory image paths are resolved against")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "takeoff-gl",
		Level:           level,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagAssets != "" {
		cfg.Assets.Root = flagAssets
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var sound *audio.Player
	if flagSound {
		sound = audio.NewPlayer(logger)
		if err := sound.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
			sound = nil
		}
		defer sound.Close()
	}

	return pixel.Run(cfg, pixel.Options{
		Seed:    seed,
		Assets:  assetFS(cfg.Assets.Root),
		Logger:  logger,
		OnEvent: sound.PlayEvent,
	})
}
