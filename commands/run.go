package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mobile-next/swipedrag/actuator"
	"github.com/mobile-next/swipedrag/config"
	"github.com/mobile-next/swipedrag/devices"
	"github.com/mobile-next/swipedrag/events"
	"github.com/mobile-next/swipedrag/gesture"
	"github.com/mobile-next/swipedrag/server"
	"github.com/mobile-next/swipedrag/utils"
)

// RunRequest represents the parameters for the run command
type RunRequest struct {
	Config config.Config
	// Listen enables the control server on this address when non-empty
	Listen string

	// optional collaborators, replaced in tests
	ListDevices  devices.Lister
	NewActuator  func(conf config.Config) (actuator.Actuator, error)
	EventCommand func(conf config.Config, device string) *exec.Cmd
	Out          io.Writer
}

func (r *RunRequest) setDefaults() {
	if r.ListDevices == nil {
		r.ListDevices = devices.LibinputLister(r.Config.LibinputPath)
	}
	if r.NewActuator == nil {
		r.NewActuator = func(conf config.Config) (actuator.Actuator, error) {
			return actuator.New(conf.Backend, actuator.Options{XdotoolPath: conf.XdotoolPath})
		}
	}
	if r.EventCommand == nil {
		r.EventCommand = func(conf config.Config, device string) *exec.Cmd {
			cmd := events.DebugEventsCommand(conf.LibinputPath, device)
			// libinput diagnostics are only useful with --verbose
			if utils.IsVerbose() {
				cmd.Stderr = os.Stderr
			}
			return cmd
		}
	}
	if r.Out == nil {
		r.Out = os.Stdout
	}
}

// SelectDevice lists devices and picks the one matching the configured pattern.
// On failure the error is a *devices.DeviceNotFoundError carrying the candidates.
func SelectDevice(list devices.Lister, pattern string) (devices.InputDevice, error) {
	candidates, err := devices.ListDevices(list)
	if err != nil {
		return devices.InputDevice{}, err
	}
	return devices.FindDevice(candidates, pattern)
}

// RunCommand tracks the selected device and turns three finger swipes into
// pointer drags until the event source exits or ctx is cancelled.
func RunCommand(ctx context.Context, req RunRequest) error {
	req.setDefaults()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := req.Config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	device, err := SelectDevice(req.ListDevices, req.Config.DevicePattern)
	if err != nil {
		return err
	}
	fmt.Fprintf(req.Out, "Found device: %s\n", device)

	pointer, err := req.NewActuator(req.Config)
	if err != nil {
		return fmt.Errorf("failed to create pointer backend: %w", err)
	}
	defer pointer.Close()

	handler := gesture.NewHandler(pointer,
		gesture.WithScale(req.Config.Scale),
		gesture.WithCommitDelay(req.Config.CommitDelayDuration()),
	)

	source, err := events.Start(ctx, req.EventCommand(req.Config, device.Kernel))
	if err != nil {
		return fmt.Errorf("failed to start event source: %w", err)
	}
	defer source.Stop()

	// hooks run in reverse: the button is released first
	registerShutdown("close-pointer-backend", pointer.Close)
	registerShutdown("stop-event-source", source.Stop)
	registerShutdown("release-pointer", func() error {
		handler.End(true)
		return nil
	})

	if req.Listen != "" {
		ctrl := &runController{
			device:  device,
			conf:    req.Config,
			handler: handler,
			source:  source,
			cancel:  cancel,
		}
		srv := server.New(ctrl)
		if err := srv.Listen(req.Listen); err != nil {
			return err
		}
		defer srv.Close()
	}

	utils.Info("Tracking %s (backend=%s, scale=%v, commit delay=%v)",
		device.Kernel, req.Config.Backend, req.Config.Scale, req.Config.CommitDelayDuration())

	if err := events.Pump(ctx, source, handler); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	utils.Verbose("Event source %s exited: %v", source.ID, source.Err())
	return nil
}

// runController exposes a running tracker to the control server
type runController struct {
	device  devices.InputDevice
	conf    config.Config
	handler *gesture.Handler
	source  *events.Source
	cancel  context.CancelFunc
}

func (c *runController) Status() server.Status {
	return server.Status{
		Device:      c.device.String(),
		Backend:     c.conf.Backend,
		Mode:        c.handler.Mode().String(),
		Serial:      c.handler.Serial(),
		Scale:       c.conf.Scale,
		CommitDelay: c.conf.CommitDelay,
		SourceID:    c.source.ID,
	}
}

func (c *runController) Release() {
	c.handler.End(true)
}

func (c *runController) Shutdown() {
	utils.Info("Shutdown requested through control server")
	c.cancel()
}
