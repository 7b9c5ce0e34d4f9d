package gesture

// Mode is the drag state of the handler
type Mode int

const (
	// Ready means no drag is in progress and the button is up
	Ready Mode = iota
	// Acting means a drag is in progress and the button is down
	Acting
	// Waiting means the swipe just ended; a new swipe within the commit delay continues the drag
	Waiting
)

func (m Mode) String() string {
	switch m {
	case Ready:
		return "ready"
	case Acting:
		return "acting"
	case Waiting:
		return "waiting"
	default:
		return "unknown"
	}
}
