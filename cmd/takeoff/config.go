package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/takeoff-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, as YAML.

The configuration is read from --config, then ~/.takeoff/configs/takeoff.yaml,
then ./configs/takeoff.yaml, falling back to the built-in defaults.

Examples:
  takeoff config
  takeoff config > ~/.takeoff/configs/takeoff.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	//nolint:errcheck // Nothing useful to do if stdout is closed
	os.Stdout.Write(out)
}
