package takeoff

import (
	"math/rand"

	"github.com/vovakirdan/takeoff-arcade/internal/config"
	"github.com/vovakirdan/takeoff-arcade/internal/core"
)

// Hazard is an obstacle on the field. Hazards never move once spawned.
type Hazard struct {
	Name   string
	Image  string
	Pos    core.Point // Center of the sprite
	Loaded bool       // Image was available when the hazard spawned
}

// Initial returns the first letter of the hazard name, used by the fallback sprite.
func (h Hazard) Initial() rune {
	for _, r := range h.Name {
		return r
	}
	return '?'
}

// HitBox returns the square around the hazard the player center must stay out of.
func (h Hazard) HitBox(half float64) core.Rect {
	return core.RectAround(h.Pos, half, half)
}

// spawnHazards picks n hazards uniformly from the catalog (repeats allowed)
// at positions uniform within the configured spawn bounds.
func spawnHazards(rng *rand.Rand, cfg config.HazardConfig, n int, assets AssetChecker) []Hazard {
	hazards := make([]Hazard, 0, n)
	for i := 0; i < n; i++ {
		entry := cfg.Catalog[rng.Intn(len(cfg.Catalog))]
		x := cfg.MinX + rng.Float64()*(cfg.MaxX-cfg.MinX)
		y := cfg.MinY + rng.Float64()*(cfg.MaxY-cfg.MinY)
		hazards = append(hazards, Hazard{
			Name:   entry.Name,
			Image:  entry.Image,
			Pos:    core.Point{X: x, Y: y},
			Loaded: assets.Available(entry.Image),
		})
	}
	return hazards
}

// CheckCollision reports the first hazard whose hit box strictly contains
// the player's center. Returns -1 when nothing is hit.
func CheckCollision(player core.Rect, hazards []Hazard, half float64) int {
	center := player.Center()
	for i, h := range hazards {
		if h.HitBox(half).ContainsStrict(center) {
			return i
		}
	}
	return -1
}
