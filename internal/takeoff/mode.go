package takeoff

// Mode is the current phase of the game. It drives both rendering and input dispatch.
type Mode int

const (
	ModeMenu     Mode = iota // Aircraft selection
	ModePlaying              // Flying between hazards
	ModeTakeoff              // Takeoff attempt armed, resolved on the next frame
	ModeGameOver             // Hit a hazard
	ModeSuccess              // Took off above the altitude threshold
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeTakeoff:
		return "takeoff"
	case ModeGameOver:
		return "gameover"
	case ModeSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// InFlight reports whether the aircraft is on the field and collisions apply.
func (m Mode) InFlight() bool {
	return m == ModePlaying || m == ModeTakeoff
}

// Ended reports whether the mode is one of the end screens.
func (m Mode) Ended() bool {
	return m == ModeGameOver || m == ModeSuccess
}
