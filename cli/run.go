package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobile-next/swipedrag/commands"
	"github.com/mobile-next/swipedrag/config"
	"github.com/mobile-next/swipedrag/daemon"
	"github.com/mobile-next/swipedrag/devices"
	"github.com/mobile-next/swipedrag/server"
	"github.com/mobile-next/swipedrag/utils"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Track the touchpad and emulate click-and-drag",
	Long: `Finds the touchpad, follows its libinput events and holds the primary button
while a three finger swipe is in progress. Runs until libinput exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load(resolvedConfigPath())
		if err != nil {
			return err
		}
		applyRunFlags(cmd, &conf)

		if runAsDaemon {
			child, err := daemon.Daemonize()
			if err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}
			if child != nil {
				fmt.Printf("Running in the background (pid %d), log at %s\n", child.Pid, daemon.LogFile())
				return nil
			}
			registerDaemonRelease()
		}

		err = commands.RunCommand(context.Background(), commands.RunRequest{Config: conf, Listen: listenAddr})

		var notFound *devices.DeviceNotFoundError
		if errors.As(err, &notFound) {
			printDeviceNotFound(notFound)
		}
		return err
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the background process started with 'run --daemon'",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := daemon.Stop()
		if err != nil {
			return err
		}

		fmt.Printf("Sent stop signal to process %d\n", pid)
		return nil
	},
}

func applyRunFlags(cmd *cobra.Command, conf *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("device-pattern") {
		conf.DevicePattern = devicePattern
	}
	if flags.Changed("scale") {
		conf.Scale = scale
	}
	if flags.Changed("commit-delay") {
		conf.CommitDelay = commitDelay
	}
	if flags.Changed("backend") {
		conf.Backend = backend
	}
}

func registerDaemonRelease() {
	hook := commands.GetShutdownHook()
	if hook == nil {
		return
	}
	hook.Register("release-pid-file", func() error {
		if err := daemon.Release(); err != nil {
			utils.Verbose("Failed to release pid file: %v", err)
			return err
		}
		return nil
	})
}

func printDeviceNotFound(err *devices.DeviceNotFoundError) {
	fmt.Println("Unable to find gesturable device. The devices known are:")
	for _, d := range err.Candidates {
		fmt.Println(d.String())
	}
	fmt.Println("Aborting")
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(stopCmd)

	runCmd.Flags().StringVar(&devicePattern, "device-pattern", config.DefaultDevicePattern, "substring of the device name to track (case-insensitive)")
	runCmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "multiplier applied to swipe offsets")
	runCmd.Flags().Float64Var(&commitDelay, "commit-delay", config.DefaultCommitDelay, "seconds to keep the button down after a swipe ends")
	runCmd.Flags().StringVar(&backend, "backend", "xdotool", "pointer backend: xdotool, xtest or null")
	runCmd.Flags().BoolVarP(&runAsDaemon, "daemon", "d", false, "run in the background")
	runCmd.Flags().StringVar(&listenAddr, "listen", "", fmt.Sprintf("enable the control server on this address (e.g. '%s')", server.DefaultAddress))
}
