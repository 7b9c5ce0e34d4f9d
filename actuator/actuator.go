package actuator

import (
	"fmt"
	"strings"
)

const (
	BackendXdotool = "xdotool"
	BackendXTest   = "xtest"
	BackendNull    = "null"
)

// Actuator is the pointer capability driven by the gesture handler.
// Every call maps to a single external invocation.
type Actuator interface {
	Press() error
	Release() error
	MoveRelative(dx, dy float64) error
	Close() error
}

// CommandError reports a failed pointer command. It never changes gesture state.
type CommandError struct {
	Backend string
	Action  string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Backend, e.Action, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Options carries backend specific settings
type Options struct {
	XdotoolPath string
}

// Backends returns the names accepted by New
func Backends() []string {
	return []string{BackendXdotool, BackendXTest, BackendNull}
}

// New creates the actuator for the given backend name
func New(backend string, opts Options) (Actuator, error) {
	switch strings.ToLower(backend) {
	case BackendXdotool, "":
		return NewXdotool(opts.XdotoolPath), nil
	case BackendXTest:
		return NewXTest()
	case BackendNull:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("unknown pointer backend %q, expected one of: %s", backend, strings.Join(Backends(), ", "))
	}
}
