package commands

import (
	"github.com/mobile-next/swipedrag/devices"
)

// DeviceEntry is one row of the devices command output
type DeviceEntry struct {
	devices.InputDevice
	Matches bool `json:"matches"`
}

// DevicesCommand lists libinput devices and flags those matching pattern
func DevicesCommand(list devices.Lister, pattern string) *CommandResponse {
	found, err := devices.ListDevices(list)
	if err != nil {
		return NewErrorResponse(err)
	}

	entries := make([]DeviceEntry, 0, len(found))
	for _, d := range found {
		entries = append(entries, DeviceEntry{
			InputDevice: d,
			Matches:     pattern != "" && d.Matches(pattern),
		})
	}

	return NewSuccessResponse(map[string]interface{}{
		"pattern": pattern,
		"devices": entries,
	})
}
