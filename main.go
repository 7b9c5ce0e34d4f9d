package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mobile-next/swipedrag/cli"
	"github.com/mobile-next/swipedrag/commands"
	"github.com/mobile-next/swipedrag/devices"
	"github.com/mobile-next/swipedrag/utils"
)

func main() {
	// cleanup hooks release the pointer button if we are interrupted mid-drag
	hooks := devices.NewShutdownHook()
	commands.SetShutdownHook(hooks)

	// setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// run command in goroutine
	done := make(chan error, 1)
	go func() {
		done <- cli.Execute()
	}()

	// wait for command completion or signal
	select {
	case sig := <-sigChan:
		utils.Verbose("Received %s, shutting down", sig)
		if err := hooks.Shutdown(); err != nil {
			utils.Verbose("Shutdown finished with errors: %v", err)
		}
		os.Exit(0)
	case err := <-done:
		_ = hooks.Shutdown()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
