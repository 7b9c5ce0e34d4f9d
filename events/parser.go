package events

import (
	"strconv"
	"strings"
)

const (
	actionPointerAxis   = "POINTER_AXIS"
	actionPointerMotion = "POINTER_MOTION"
	actionScrollPrefix  = "POINTER_SCROLL_"
	actionSwipeBegin    = "GESTURE_SWIPE_BEGIN"
	actionSwipeUpdate   = "GESTURE_SWIPE_UPDATE"
	actionSwipeEnd      = "GESTURE_SWIPE_END"
)

// ParseLine classifies one line of `libinput debug-events` output.
//
// Lines look like
//
//	event7   GESTURE_SWIPE_UPDATE +1.620s	3  0.12/-4.56 ( 0.20/-7.30 unaccelerated)
//
// i.e. "<device> <ACTION> <time>" then a tab and the payload. The payload
// starts with the finger count; updates carry "dx/dy" after it. The second
// return value is false for malformed or irrelevant lines.
func ParseLine(line string) (Event, bool) {
	head, payload, _ := strings.Cut(line, "\t")

	fields := strings.Fields(head)
	if len(fields) < 2 {
		return Event{}, false
	}
	action := fields[1]

	switch {
	case action == actionPointerAxis, action == actionPointerMotion, strings.HasPrefix(action, actionScrollPrefix):
		return Event{Kind: OtherPointerActivity}, true
	case action == actionSwipeBegin:
		return parseSwipe(SwipeBegin, payload)
	case action == actionSwipeEnd:
		return parseSwipe(SwipeEnd, payload)
	case action == actionSwipeUpdate:
		ev, ok := parseSwipe(SwipeUpdate, payload)
		if !ok {
			return Event{}, false
		}
		dx, dy, ok := parseOffsets(payload[1:])
		if !ok {
			return Event{}, false
		}
		ev.DX = dx
		ev.DY = dy
		return ev, true
	}

	return Event{}, false
}

func parseSwipe(kind Kind, payload string) (Event, bool) {
	if payload == "" {
		return Event{}, false
	}
	// the finger count is the first character of the payload
	fingers, err := strconv.Atoi(payload[:1])
	if err != nil {
		return Event{}, false
	}
	return Event{Kind: kind, Fingers: fingers}, true
}

// parseOffsets reads "dx/dy", discarding anything after dy
func parseOffsets(rest string) (float64, float64, bool) {
	parts := strings.SplitN(strings.TrimSpace(rest), "/", 3)
	if len(parts) < 2 {
		return 0, 0, false
	}

	dx, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}

	yFields := strings.Fields(parts[1])
	if len(yFields) == 0 {
		return 0, 0, false
	}
	dy, err := strconv.ParseFloat(yFields[0], 64)
	if err != nil {
		return 0, 0, false
	}

	return dx, dy, true
}
