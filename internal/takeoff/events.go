package takeoff

// EventKind identifies a state change reported to the host.
type EventKind int

const (
	EventSelectionChanged EventKind = iota // Menu cursor moved
	EventGameStarted                       // Menu -> Playing
	EventTakeoffArmed                      // Playing -> Takeoff
	EventTakeoffAborted                    // Takeoff -> Playing, aircraft below the threshold
	EventCrashed                           // Playing/Takeoff -> GameOver
	EventTookOff                           // Takeoff -> Success
	EventReturnedToMenu                    // GameOver/Success -> Menu
)

// String returns a short name for logging.
func (k EventKind) String() string {
	switch k {
	case EventSelectionChanged:
		return "selection_changed"
	case EventGameStarted:
		return "game_started"
	case EventTakeoffArmed:
		return "takeoff_armed"
	case EventTakeoffAborted:
		return "takeoff_aborted"
	case EventCrashed:
		return "crashed"
	case EventTookOff:
		return "took_off"
	case EventReturnedToMenu:
		return "returned_to_menu"
	default:
		return "unknown"
	}
}

// Event describes one transition and the state right after it.
type Event struct {
	Kind     EventKind
	Mode     Mode
	Aircraft string // Selected aircraft name
	Hazard   string // Hazard hit, for EventCrashed
	Elapsed  int    // Whole seconds since the game started
	Score    int
}
