package actuator

import (
	"fmt"
	"math"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil"
)

// XTest injects pointer events through the X11 XTEST extension,
// avoiding one process spawn per motion event.
type XTest struct {
	mu      sync.Mutex
	xu      *xgbutil.XUtil
	conn    *xgb.Conn
	rootWin xproto.Window
	motion  motionAccumulator
	closed  bool
}

func NewXTest() (*XTest, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	conn := xu.Conn()
	if conn == nil {
		return nil, fmt.Errorf("failed to open X11 connection")
	}

	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("XTEST extension unavailable: %w", err)
	}

	return &XTest{
		xu:      xu,
		conn:    conn,
		rootWin: xu.RootWin(),
	}, nil
}

func (x *XTest) Press() error {
	return x.fakeButton("press", xproto.ButtonPress)
}

func (x *XTest) Release() error {
	return x.fakeButton("release", xproto.ButtonRelease)
}

func (x *XTest) MoveRelative(dx, dy float64) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	stepX, stepY := x.motion.add(dx, dy)
	if stepX == 0 && stepY == 0 {
		return nil
	}

	// detail 1 marks the motion as relative to the current pointer position
	err := xtest.FakeInputChecked(
		x.conn,
		xproto.MotionNotify,
		1,
		xproto.TimeCurrentTime,
		x.rootWin,
		stepX,
		stepY,
		0,
	).Check()
	if err != nil {
		return &CommandError{Backend: BackendXTest, Action: "move", Err: err}
	}
	x.conn.Sync()
	return nil
}

func (x *XTest) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.closed {
		return nil
	}
	x.closed = true
	x.conn.Close()
	return nil
}

func (x *XTest) fakeButton(action string, eventType byte) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	err := xtest.FakeInputChecked(
		x.conn,
		eventType,
		byte(xproto.ButtonIndex1),
		xproto.TimeCurrentTime,
		x.rootWin,
		0,
		0,
		0,
	).Check()
	if err != nil {
		return &CommandError{Backend: BackendXTest, Action: action, Err: err}
	}
	x.conn.Sync()
	return nil
}

// motionAccumulator turns fractional offsets into whole pixel steps,
// carrying the remainder to the next motion event.
type motionAccumulator struct {
	remX float64
	remY float64
}

func (m *motionAccumulator) add(dx, dy float64) (int16, int16) {
	m.remX += dx
	m.remY += dy

	stepX := math.Trunc(m.remX)
	stepY := math.Trunc(m.remY)
	m.remX -= stepX
	m.remY -= stepY

	return clampToInt16(stepX), clampToInt16(stepY)
}

func clampToInt16(value float64) int16 {
	if value < math.MinInt16 {
		return math.MinInt16
	}
	if value > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(value)
}
