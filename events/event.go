package events

import "fmt"

// SwipeFingers is the only finger count acted on
const SwipeFingers = 3

// Kind classifies a libinput debug-events line
type Kind int

const (
	SwipeBegin Kind = iota + 1
	SwipeUpdate
	SwipeEnd
	// OtherPointerActivity is scrolling or ordinary pointer motion
	OtherPointerActivity
)

func (k Kind) String() string {
	switch k {
	case SwipeBegin:
		return "swipe-begin"
	case SwipeUpdate:
		return "swipe-update"
	case SwipeEnd:
		return "swipe-end"
	case OtherPointerActivity:
		return "pointer-activity"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is a parsed gesture event. Fingers is set for swipe kinds,
// DX and DY only for SwipeUpdate.
type Event struct {
	Kind    Kind
	Fingers int
	DX      float64
	DY      float64
}
