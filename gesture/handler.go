package gesture

import (
	"sync"
	"time"

	"github.com/mobile-next/swipedrag/utils"
	"github.com/sirupsen/logrus"
)

const (
	DefaultScale       = 1.0
	DefaultCommitDelay = 1200 * time.Millisecond
)

// Pointer is the capability the handler drives
type Pointer interface {
	Press() error
	Release() error
	MoveRelative(dx, dy float64) error
}

// scheduleFunc runs fn after d and returns a best-effort stop function
type scheduleFunc func(d time.Duration, fn func()) (stop func() bool)

func afterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// Handler turns swipe begin/update/end notifications into a single
// press-move-release drag, keeping the button down across short gaps
// between swipes.
//
// Handler is safe for concurrent use: every transition, including the
// deferred commit, runs under one mutex.
type Handler struct {
	mu          sync.Mutex
	mode        Mode
	serial      uint64
	scale       float64
	commitDelay time.Duration

	pointer    Pointer
	schedule   scheduleFunc
	stopCommit func() bool
	log        *logrus.Logger
}

// HandlerOption configures a Handler instance.
type HandlerOption func(*Handler)

// WithScale sets the multiplier applied to reported offsets.
func WithScale(scale float64) HandlerOption {
	return func(h *Handler) {
		h.scale = scale
	}
}

// WithCommitDelay sets how long the button is held after a swipe ends.
func WithCommitDelay(d time.Duration) HandlerOption {
	return func(h *Handler) {
		h.commitDelay = d
	}
}

func withScheduler(s scheduleFunc) HandlerOption {
	return func(h *Handler) {
		h.schedule = s
	}
}

// NewHandler creates a handler in the Ready state
func NewHandler(pointer Pointer, opts ...HandlerOption) *Handler {
	h := &Handler{
		mode:        Ready,
		scale:       DefaultScale,
		commitDelay: DefaultCommitDelay,
		pointer:     pointer,
		schedule:    afterFunc,
		log:         utils.Logger(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Begin starts a drag, or continues the previous one if it is still
// inside its commit delay.
func (h *Handler) Begin() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.serial++
	h.cancelCommitLocked()

	// Acting and Waiting already hold the button down
	if h.mode == Ready {
		h.call("press", h.pointer.Press)
	}
	h.setModeLocked(Acting)
}

// Update forwards a scaled relative motion. It does not look at the mode.
func (h *Handler) Update(x, y float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	dx := x * h.scale
	dy := y * h.scale
	h.call("move", func() error {
		return h.pointer.MoveRelative(dx, dy)
	})
}

// End finishes a swipe. A forced end releases the button immediately;
// otherwise the release is deferred by the commit delay and skipped if
// another Begin arrives first.
func (h *Handler) End(forced bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if forced {
		if h.mode != Ready {
			h.cancelCommitLocked()
			h.releaseLocked()
		}
		return
	}

	if h.mode == Ready {
		// nothing is pressed, a release here would be unmatched
		return
	}

	h.cancelCommitLocked()
	h.setModeLocked(Waiting)

	serial := h.serial
	h.stopCommit = h.schedule(h.commitDelay, func() {
		h.commit(serial)
	})
}

// Mode returns the current drag state
func (h *Handler) Mode() Mode {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mode
}

// Serial returns the current drag session number
func (h *Handler) Serial() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.serial
}

// commit runs after the commit delay; the lock is not held while waiting.
func (h *Handler) commit(serial uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.mode != Waiting || h.serial != serial {
		h.log.WithFields(logrus.Fields{"serial": serial, "current": h.serial, "mode": h.mode}).Debug("commit superseded")
		return
	}
	h.stopCommit = nil
	h.releaseLocked()
}

func (h *Handler) releaseLocked() {
	h.call("release", h.pointer.Release)
	h.setModeLocked(Ready)
}

func (h *Handler) cancelCommitLocked() {
	if h.stopCommit != nil {
		h.stopCommit()
		h.stopCommit = nil
	}
}

func (h *Handler) setModeLocked(mode Mode) {
	if h.mode != mode {
		h.log.WithFields(logrus.Fields{"from": h.mode, "to": mode, "serial": h.serial}).Debug("gesture mode changed")
	}
	h.mode = mode
}

// call invokes a pointer command; failures are logged and never change state.
func (h *Handler) call(action string, fn func() error) {
	if err := fn(); err != nil {
		h.log.WithFields(logrus.Fields{"action": action, "serial": h.serial}).Errorf("pointer command failed: %v", err)
	}
}
