package config

import (
	_ "embed"
)

//go:embed defaults/takeoff.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/takeoff.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			StartX: 370,
			StartY: 500,
			Width:  60,
			Height: 30,
			Speed:  5,
		},
		Hazards: HazardConfig{
			MinX:    100,
			MaxX:    700,
			MinY:    150,
			MaxY:    450,
			HalfBox: 24,
			Catalog: []CatalogEntry{
				{Name: "Apple", Image: "resources/apple.png"},
				{Name: "Google", Image: "resources/google.png"},
				{Name: "Tesla", Image: "resources/tesla.png"},
				{Name: "Microsoft", Image: "resources/microsoft.png"},
				{Name: "Amazon", Image: "resources/amazon.png"},
				{Name: "Police", Image: "resources/police.png"},
			},
		},
		Runway: RunwayConfig{
			X:      100,
			Y:      500,
			Width:  600,
			Height: 60,
			Label:  "Haneda Airport",
		},
		Takeoff: TakeoffConfig{
			Altitude: 100,
		},
		Aircraft: []CatalogEntry{
			{Name: "Boeing 737", Image: "resources/boeing_737.png"},
			{Name: "Airbus A320", Image: "resources/airbus_a320.png"},
			{Name: "Cessna 172", Image: "resources/cessna_172.png"},
		},
		Assets: AssetsConfig{
			Root: ".",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
