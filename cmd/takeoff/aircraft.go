package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/takeoff-arcade/internal/config"
)

var aircraftCmd = &cobra.Command{
	Use:   "aircraft",
	Short: "List aircraft and hazards",
	Long:  `Shows the aircraft you can fly and the hazards that can appear on the field.`,
	Args:  cobra.NoArgs,
	Run:   runAircraft,
}

func runAircraft(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Aircraft:")
	printCatalog(cfg.Aircraft)
	fmt.Println()
	fmt.Println("Hazards:")
	printCatalog(cfg.Hazards.Catalog)
	fmt.Println()
	fmt.Println("Run 'takeoff play' to fly.")
}

func printCatalog(entries []config.CatalogEntry) {
	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range entries {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Image")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")
	for _, e := range entries {
		fmt.Printf("  %-*s  %s\n", maxNameLen, e.Name, e.Image)
	}
}
