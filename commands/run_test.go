//go:build unix

package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mobile-next/swipedrag/actuator"
	"github.com/mobile-next/swipedrag/config"
	"github.com/mobile-next/swipedrag/devices"
	"github.com/mobile-next/swipedrag/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingActuator struct {
	mu     sync.Mutex
	calls  []string
	closed int
}

func (r *recordingActuator) add(call string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
	return nil
}

func (r *recordingActuator) Press() error   { return r.add("press") }
func (r *recordingActuator) Release() error { return r.add("release") }
func (r *recordingActuator) MoveRelative(dx, dy float64) error {
	return r.add(fmt.Sprintf("move %v %v", dx, dy))
}
func (r *recordingActuator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed++
	return nil
}

func (r *recordingActuator) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func staticLister(output string) devices.Lister {
	return func() ([]byte, error) {
		return []byte(output), nil
	}
}

// scriptedEvents replays lines through a real process, like libinput would
func scriptedEvents(lines ...string) func(config.Config, string) *exec.Cmd {
	return func(conf config.Config, device string) *exec.Cmd {
		script := strings.Join(lines, "\n") + "\n"
		return exec.Command("printf", "%s", script)
	}
}

func newRunRequest(pointer *recordingActuator, out *bytes.Buffer, lines ...string) RunRequest {
	conf := config.Default()
	conf.CommitDelay = 5
	return RunRequest{
		Config:      conf,
		ListDevices: staticLister(testDeviceList),
		NewActuator: func(config.Config) (actuator.Actuator, error) {
			return pointer, nil
		},
		EventCommand: scriptedEvents(lines...),
		Out:          out,
	}
}

func TestRunCommand_DragUntilSourceExits(t *testing.T) {
	pointer := &recordingActuator{}
	var out bytes.Buffer

	req := newRunRequest(pointer, &out,
		" event7   GESTURE_SWIPE_BEGIN     +1.00s\t3",
		" event7   GESTURE_SWIPE_UPDATE    +1.01s\t3  2.00/-1.00 ( 3.00/-1.50 unaccelerated)",
		" event7   GESTURE_SWIPE_END       +1.20s\t3",
		" event7   GESTURE_SWIPE_BEGIN     +1.30s\t3",
		" event7   GESTURE_SWIPE_UPDATE    +1.31s\t3  0.50/ 0.50 ( 0.70/ 0.70 unaccelerated)",
	)

	err := RunCommand(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Found device: /dev/input/event7 => SynPS/2 Synaptics TouchPad")
	assert.Equal(t, []string{
		"press",
		"move 2 -1",
		"move 0.5 0.5",
		// forced release when the source terminates
		"release",
	}, pointer.snapshot())
	assert.GreaterOrEqual(t, pointer.closed, 1)
}

func TestRunCommand_TwoFingerSwipeIgnored(t *testing.T) {
	pointer := &recordingActuator{}
	var out bytes.Buffer

	req := newRunRequest(pointer, &out,
		" event7   GESTURE_SWIPE_BEGIN     +1.00s\t2",
		" event7   GESTURE_SWIPE_UPDATE    +1.01s\t2  2.00/-1.00 ( 3.00/-1.50 unaccelerated)",
		" event7   GESTURE_SWIPE_END       +1.20s\t2",
	)

	require.NoError(t, RunCommand(context.Background(), req))
	assert.Empty(t, pointer.snapshot())
}

func TestRunCommand_ScaleApplied(t *testing.T) {
	pointer := &recordingActuator{}
	var out bytes.Buffer

	req := newRunRequest(pointer, &out,
		" event7   GESTURE_SWIPE_BEGIN     +1.00s\t3",
		" event7   GESTURE_SWIPE_UPDATE    +1.01s\t3  2.00/-1.00 ( 3.00/-1.50 unaccelerated)",
		" event7   POINTER_MOTION          +2.00s\t  1.00/  0.50 ( 1.00/ 0.50 unaccelerated)",
	)
	req.Config.Scale = 3

	require.NoError(t, RunCommand(context.Background(), req))
	assert.Equal(t, []string{"press", "move 6 -3", "release"}, pointer.snapshot())
}

func TestRunCommand_DeviceNotFound(t *testing.T) {
	pointer := &recordingActuator{}
	var out bytes.Buffer

	req := newRunRequest(pointer, &out)
	req.Config.DevicePattern = "trackpoint"

	err := RunCommand(context.Background(), req)
	require.Error(t, err)

	var notFound *devices.DeviceNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Len(t, notFound.Candidates, 2)
	assert.Empty(t, pointer.snapshot())
}

func TestRunCommand_InvalidConfig(t *testing.T) {
	pointer := &recordingActuator{}
	var out bytes.Buffer

	req := newRunRequest(pointer, &out)
	req.Config.Scale = 0

	err := RunCommand(context.Background(), req)
	assert.Error(t, err)
}

func TestRunCommand_CancelReleasesButton(t *testing.T) {
	pointer := &recordingActuator{}
	var out bytes.Buffer

	req := newRunRequest(pointer, &out)
	req.EventCommand = func(config.Config, string) *exec.Cmd {
		return exec.Command("sh", "-c", `printf ' event7   GESTURE_SWIPE_BEGIN     +1.00s\t3\n'; sleep 10`)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- RunCommand(ctx, req)
	}()

	require.Eventually(t, func() bool {
		return len(pointer.snapshot()) == 1
	}, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
	assert.Equal(t, []string{"press", "release"}, pointer.snapshot())
}

func TestRunCommand_RegistersShutdownHooks(t *testing.T) {
	hook := devices.NewShutdownHook()
	SetShutdownHook(hook)
	defer SetShutdownHook(nil)

	pointer := &recordingActuator{}
	var out bytes.Buffer
	req := newRunRequest(pointer, &out, " event7   GESTURE_SWIPE_BEGIN     +1.00s\t3")

	require.NoError(t, RunCommand(context.Background(), req))
	assert.Equal(t, 3, hook.Count())
	assert.NoError(t, hook.Shutdown())
}

func TestRunCommand_ControlServer(t *testing.T) {
	pointer := &recordingActuator{}
	var out bytes.Buffer

	req := newRunRequest(pointer, &out)
	req.EventCommand = func(config.Config, string) *exec.Cmd {
		return exec.Command("sh", "-c", `printf ' event7   GESTURE_SWIPE_BEGIN     +1.00s\t3\n'; sleep 10`)
	}
	req.Listen = "127.0.0.1:12187"

	done := make(chan error, 1)
	go func() {
		done <- RunCommand(context.Background(), req)
	}()

	require.Eventually(t, func() bool {
		response := StatusCommand(req.Listen)
		if response.Status != "ok" {
			return false
		}
		return response.Data.(server.Status).Mode == "acting"
	}, 5*time.Second, 20*time.Millisecond)

	response := ReleaseCommand(req.Listen)
	require.Equal(t, "ok", response.Status, response.Error)
	assert.Equal(t, []string{"press", "release"}, pointer.snapshot())

	_, err := server.Call(req.Listen, "server.shutdown")
	require.NoError(t, err)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after shutdown request")
	}
}
