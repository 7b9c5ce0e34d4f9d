package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Event
		ok       bool
	}{
		{
			name:     "swipe begin",
			line:     " event7   GESTURE_SWIPE_BEGIN     +3.01s\t3",
			expected: Event{Kind: SwipeBegin, Fingers: 3},
			ok:       true,
		},
		{
			name:     "swipe update",
			line:     " event7   GESTURE_SWIPE_UPDATE    +3.03s\t3  0.12/-4.56 ( 0.20/-7.30 unaccelerated)",
			expected: Event{Kind: SwipeUpdate, Fingers: 3, DX: 0.12, DY: -4.56},
			ok:       true,
		},
		{
			name:     "swipe update padded",
			line:     "-event7   GESTURE_SWIPE_UPDATE    +3.03s\t3 -1.50/ 2.00 (-2.10/ 3.00 unaccelerated)",
			expected: Event{Kind: SwipeUpdate, Fingers: 3, DX: -1.5, DY: 2.0},
			ok:       true,
		},
		{
			name:     "swipe end",
			line:     " event7   GESTURE_SWIPE_END       +3.40s\t3",
			expected: Event{Kind: SwipeEnd, Fingers: 3},
			ok:       true,
		},
		{
			name:     "swipe end cancelled",
			line:     " event7   GESTURE_SWIPE_END       +3.40s\t4 cancelled",
			expected: Event{Kind: SwipeEnd, Fingers: 4},
			ok:       true,
		},
		{
			name:     "two finger begin keeps finger count",
			line:     " event7   GESTURE_SWIPE_BEGIN     +3.01s\t2",
			expected: Event{Kind: SwipeBegin, Fingers: 2},
			ok:       true,
		},
		{
			name:     "pointer motion",
			line:     " event7   POINTER_MOTION          +4.00s\t  1.00/  0.50 ( 1.00/ 0.50 unaccelerated)",
			expected: Event{Kind: OtherPointerActivity},
			ok:       true,
		},
		{
			name:     "pointer axis",
			line:     " event7   POINTER_AXIS            +4.10s\tvert -5.00/0 (0.00/0)* horiz 0.00/0 (0.00/0) (finger)",
			expected: Event{Kind: OtherPointerActivity},
			ok:       true,
		},
		{
			name:     "finger scroll",
			line:     " event7   POINTER_SCROLL_FINGER   +4.10s\tvert 1.23/0.0* horiz 0.00/0.0 (finger)",
			expected: Event{Kind: OtherPointerActivity},
			ok:       true,
		},
		{name: "device added", line: "-event7   DEVICE_ADDED            Synaptics TouchPad                seat0 default group9  cap:pg", ok: false},
		{name: "pinch", line: " event7   GESTURE_PINCH_BEGIN     +5.00s\t2", ok: false},
		{name: "empty", line: "", ok: false},
		{name: "single token", line: "event7", ok: false},
		{name: "begin without payload", line: " event7   GESTURE_SWIPE_BEGIN     +3.01s", ok: false},
		{name: "non numeric fingers", line: " event7   GESTURE_SWIPE_BEGIN     +3.01s\tx", ok: false},
		{name: "update without offsets", line: " event7   GESTURE_SWIPE_UPDATE    +3.03s\t3", ok: false},
		{name: "update bad dx", line: " event7   GESTURE_SWIPE_UPDATE    +3.03s\t3 abc/1.0", ok: false},
		{name: "update bad dy", line: " event7   GESTURE_SWIPE_UPDATE    +3.03s\t3 1.0/ (", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, ev)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "swipe-begin", SwipeBegin.String())
	assert.Equal(t, "swipe-update", SwipeUpdate.String())
	assert.Equal(t, "swipe-end", SwipeEnd.String())
	assert.Equal(t, "pointer-activity", OtherPointerActivity.String())
	assert.Equal(t, "kind(0)", Kind(0).String())
}
