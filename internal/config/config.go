// Package config provides YAML-based configuration for the takeoff game:
// world geometry, player and hazard parameters, and the aircraft and hazard catalogs.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters of the game.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Player   PlayerConfig   `yaml:"player"`
	Hazards  HazardConfig   `yaml:"hazards"`
	Runway   RunwayConfig   `yaml:"runway"`
	Takeoff  TakeoffConfig  `yaml:"takeoff"`
	Aircraft []CatalogEntry `yaml:"aircraft"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// WorldConfig defines the logical drawing surface.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the aircraft's start position, size and speed.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Distance moved per key press
}

// HazardConfig defines where hazards spawn and how large their hit box is.
type HazardConfig struct {
	MinX    float64        `yaml:"min_x"`
	MaxX    float64        `yaml:"max_x"`
	MinY    float64        `yaml:"min_y"`
	MaxY    float64        `yaml:"max_y"`
	HalfBox float64        `yaml:"half_box"` // Half side of the square hit box
	Catalog []CatalogEntry `yaml:"catalog"`
}

// RunwayConfig defines the runway strip drawn at the bottom of the field.
type RunwayConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Label  string  `yaml:"label"`
}

// TakeoffConfig defines the altitude the aircraft must be above when the
// takeoff attempt is evaluated. Smaller y is higher.
type TakeoffConfig struct {
	Altitude float64 `yaml:"altitude"`
}

// CatalogEntry is a named sprite reference.
type CatalogEntry struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

// AssetsConfig tells hosts where image references are resolved.
type AssetsConfig struct {
	Root string `yaml:"root"`
}

// Validate reports configuration values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player speed must be positive, got %v", c.Player.Speed))
	}
	if c.Hazards.MinX > c.Hazards.MaxX || c.Hazards.MinY > c.Hazards.MaxY {
		errs = append(errs, fmt.Errorf("hazard spawn bounds are inverted: x[%v,%v] y[%v,%v]",
			c.Hazards.MinX, c.Hazards.MaxX, c.Hazards.MinY, c.Hazards.MaxY))
	}
	if c.Hazards.HalfBox <= 0 {
		errs = append(errs, fmt.Errorf("hazard half_box must be positive, got %v", c.Hazards.HalfBox))
	}
	if len(c.Hazards.Catalog) == 0 {
		errs = append(errs, errors.New("hazard catalog is empty"))
	}
	if len(c.Aircraft) == 0 {
		errs = append(errs, errors.New("aircraft catalog is empty"))
	}
	for i, a := range c.Aircraft {
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("aircraft %d has no name", i))
		}
	}
	for i, h := range c.Hazards.Catalog {
		if h.Name == "" {
			errs = append(errs, fmt.Errorf("hazard %d has no name", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
