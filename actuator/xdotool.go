package actuator

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mobile-next/swipedrag/utils"
)

const primaryButton = "1"

// Runner executes an external command and returns its combined output
type Runner func(name string, args ...string) ([]byte, error)

func execRunner(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// Xdotool drives the X pointer by invoking the xdotool binary
type Xdotool struct {
	path string
	run  Runner
}

func NewXdotool(path string) *Xdotool {
	if path == "" {
		path = "xdotool"
	}
	return &Xdotool{path: path, run: execRunner}
}

// WithRunner replaces the command runner, used by tests
func (x *Xdotool) WithRunner(run Runner) *Xdotool {
	x.run = run
	return x
}

func (x *Xdotool) Press() error {
	return x.runXdotool("press", "mousedown", primaryButton)
}

func (x *Xdotool) Release() error {
	return x.runXdotool("release", "mouseup", primaryButton)
}

func (x *Xdotool) MoveRelative(dx, dy float64) error {
	// "--" keeps negative offsets from being parsed as flags
	return x.runXdotool("move", "mousemove_relative", "--", formatOffset(dx), formatOffset(dy))
}

func (x *Xdotool) Close() error {
	return nil
}

func (x *Xdotool) runXdotool(action string, args ...string) error {
	utils.Verbose("Running %s %s", x.path, strings.Join(args, " "))
	output, err := x.run(x.path, args...)
	if err != nil {
		msg := strings.TrimSpace(string(output))
		if msg != "" {
			err = fmt.Errorf("%w\nOutput: %s", err, msg)
		}
		return &CommandError{Backend: BackendXdotool, Action: action, Err: err}
	}
	return nil
}

func formatOffset(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
