package events

import (
	"context"
	"errors"
)

// Sink receives the gesture notifications derived from the event stream
type Sink interface {
	Begin()
	Update(x, y float64)
	End(forced bool)
}

// LineSource yields raw event lines until it is exhausted
type LineSource interface {
	Next(ctx context.Context) (string, error)
}

// Dispatch applies one parsed event to sink. Swipes with a finger count
// other than SwipeFingers are ignored.
func Dispatch(ev Event, sink Sink) {
	switch ev.Kind {
	case OtherPointerActivity:
		sink.End(true)
	case SwipeBegin:
		if ev.Fingers == SwipeFingers {
			sink.Begin()
		}
	case SwipeUpdate:
		if ev.Fingers == SwipeFingers {
			sink.Update(ev.DX, ev.DY)
		}
	case SwipeEnd:
		if ev.Fingers == SwipeFingers {
			sink.End(false)
		}
	}
}

// Pump feeds every line of src to sink in order until src terminates or
// ctx is cancelled. Malformed lines are skipped. The sink is always
// force-ended on return so no drag is left in progress.
//
// A terminated source is a normal exit and yields a nil error.
func Pump(ctx context.Context, src LineSource, sink Sink) error {
	defer sink.End(true)

	for {
		line, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrSourceTerminated) {
				return nil
			}
			return err
		}

		ev, ok := ParseLine(line)
		if !ok {
			continue
		}
		Dispatch(ev, sink)
	}
}
