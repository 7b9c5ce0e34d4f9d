package devices

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/mobile-next/swipedrag/utils"
)

// Lister produces the raw `libinput list-devices` output
type Lister func() ([]byte, error)

// LibinputLister runs `libinput list-devices`, discarding stderr
func LibinputLister(libinputPath string) Lister {
	if libinputPath == "" {
		libinputPath = "libinput"
	}
	return func() ([]byte, error) {
		cmd := exec.Command(libinputPath, "list-devices")
		output, err := cmd.Output()
		if err != nil {
			return nil, fmt.Errorf("failed to run '%s list-devices': %w", libinputPath, err)
		}
		return output, nil
	}
}

// ListDevices returns every device block that names both a kernel path and a device name
func ListDevices(list Lister) ([]InputDevice, error) {
	output, err := list()
	if err != nil {
		return nil, err
	}

	devices, err := ParseDeviceList(strings.NewReader(string(output)))
	if err != nil {
		return nil, err
	}

	utils.Verbose("Discovered %d input device(s)", len(devices))
	return devices, nil
}

// ParseDeviceList reads "key: value" blocks separated by blank lines.
// Keys are lowercased; values keep any further colons.
func ParseDeviceList(r io.Reader) ([]InputDevice, error) {
	var devices []InputDevice
	current := map[string]string{}

	flush := func() {
		kernel, hasKernel := current["kernel"]
		name, hasName := current["device"]
		if hasKernel && hasName {
			devices = append(devices, InputDevice{Kernel: kernel, Name: name})
		}
		current = map[string]string{}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		current[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read device list: %w", err)
	}
	flush()

	return devices, nil
}
