package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/takeoff-arcade/internal/audio"
	"github.com/vovakirdan/takeoff-arcade/internal/core"
	"github.com/vovakirdan/takeoff-arcade/internal/platform/tui"
	"github.com/vovakirdan/takeoff-arcade/internal/takeoff"
)

var (
	flagAssets string
	flagSound  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal. The 800x600 field is scaled to fit
the terminal, so larger windows show more detail.

Controls:
  Up/Down        - Pick an aircraft (menu), climb/descend (flying)
  Left/Right     - Move sideways
  Enter          - Start, or return to the menu after a game
  Space          - Attempt takeoff (must be above the dashed line)
  Ctrl+S         - Save a text screenshot to ~/.takeoff/screenshots
  Q/Ctrl+C       - Quit

Sprites are looked up under --assets (or assets.root in the config).
Missing images are drawn as simple shapes.

Examples:
  takeoff play
  takeoff play --seed 42
  takeoff play --assets ./assets --sound
  takeoff play --log-level debug --log-file takeoff.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory image paths are resolved against")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig(flagAssets)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("takeoff", true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var sound *audio.Player
	if flagSound {
		sound = audio.NewPlayer(logger)
		if err := sound.Init(); err != nil {
			// The game runs without sound.
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
			logger.Warn("sound disabled", "error", err)
			sound = nil
		}
		defer sound.Close()
	}

	opts := tui.Options{
		Assets:  takeoff.DirAssets{Resolve: cfg.AssetPath},
		Logger:  logger,
		OnEvent: sound.PlayEvent,
	}
	if err := tui.Run(cfg, rt, opts); err != nil {
		fail("running game: %v", err)
	}
}
