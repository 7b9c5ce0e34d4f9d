package actuator

import (
	"github.com/mobile-next/swipedrag/utils"
)

// Null only logs the pointer commands it receives. Useful for dry runs
// on machines without a display server.
type Null struct{}

func NewNull() *Null {
	return &Null{}
}

func (n *Null) Press() error {
	utils.Info("Press(button: 1)")
	return nil
}

func (n *Null) Release() error {
	utils.Info("Release(button: 1)")
	return nil
}

func (n *Null) MoveRelative(dx, dy float64) error {
	utils.Info("MoveRelative(dx: %v, dy: %v)", dx, dy)
	return nil
}

func (n *Null) Close() error {
	return nil
}
