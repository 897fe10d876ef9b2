package core

// RuntimeConfig contains settings a host passes to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal hosts only)
	ScreenH  int   // Screen height in characters (terminal hosts only)
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for hazard placement; 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
