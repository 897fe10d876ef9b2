package takeoff

// Scoring constants.
const (
	ScoreBase      = 1000 // Points before time penalty and hazard bonus
	ScorePerSecond = 100  // Penalty per elapsed second
	ScorePerHazard = 200  // Bonus per hazard on the field
	HazardCount    = 3    // Hazards spawned per game
)

// CalcScore returns the score for a takeoff after elapsed whole seconds with
// the given number of hazards on the field. It never goes below zero.
func CalcScore(elapsed, hazards int) int {
	score := ScoreBase - elapsed*ScorePerSecond + hazards*ScorePerHazard
	if score < 0 {
		return 0
	}
	return score
}
