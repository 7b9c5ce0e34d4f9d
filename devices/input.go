package devices

import (
	"fmt"
	"strings"
)

// InputDevice is a libinput device candidate
type InputDevice struct {
	Kernel string `json:"kernel"`
	Name   string `json:"name"`
}

func (d InputDevice) String() string {
	return fmt.Sprintf("%s => %s", d.Kernel, d.Name)
}

// Matches reports whether the lowercased name contains the lowercased pattern
func (d InputDevice) Matches(pattern string) bool {
	return strings.Contains(strings.ToLower(d.Name), strings.ToLower(pattern))
}

// DeviceNotFoundError is returned when no candidate matches the tracked pattern
type DeviceNotFoundError struct {
	Pattern    string
	Candidates []InputDevice
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("no input device matching %q among %d device(s)", e.Pattern, len(e.Candidates))
}

// FindDevice returns the first device whose name contains pattern, case-insensitively
func FindDevice(candidates []InputDevice, pattern string) (InputDevice, error) {
	for _, d := range candidates {
		if d.Matches(pattern) {
			return d, nil
		}
	}
	return InputDevice{}, &DeviceNotFoundError{Pattern: pattern, Candidates: candidates}
}
