package daemon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/sevlyar/go-daemon"
)

const appName = "swipedrag"

var current *daemon.Context

// RuntimeDir returns the directory holding the pid and log files
func RuntimeDir() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appName)
}

// PidFile is where the background process records its pid
func PidFile() string {
	return filepath.Join(RuntimeDir(), appName+".pid")
}

// LogFile receives the background process output
func LogFile() string {
	return filepath.Join(RuntimeDir(), appName+".log")
}

// Daemonize detaches the process and returns the child process handle.
// If the returned process is nil, this is the child process and it should
// continue with the actual work.
// If the returned process is non-nil, this is the parent process.
func Daemonize() (*os.Process, error) {
	if err := os.MkdirAll(RuntimeDir(), 0700); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	ctx := &daemon.Context{
		PidFileName: PidFile(),
		PidFilePerm: 0644,
		LogFileName: LogFile(),
		LogFilePerm: 0640,
		WorkDir:     "/",
		Umask:       027,
		Args:        os.Args,
	}

	child, err := ctx.Reborn()
	if err != nil {
		if errors.Is(err, daemon.ErrWouldBlock) {
			return nil, fmt.Errorf("already running in the background (pid file %s is locked)", PidFile())
		}
		return nil, fmt.Errorf("failed to daemonize: %w", err)
	}

	if child == nil {
		current = ctx
	}
	return child, nil
}

// Release removes the pid file of the daemon child
func Release() error {
	if current == nil {
		return nil
	}
	return current.Release()
}

// Stop sends SIGTERM to the process recorded in the pid file
func Stop() (int, error) {
	pid, err := daemon.ReadPidFile(PidFile())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("no background process is running")
		}
		return 0, fmt.Errorf("failed to read pid file %s: %w", PidFile(), err)
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return pid, fmt.Errorf("failed to find process %d: %w", pid, err)
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		return pid, fmt.Errorf("failed to signal process %d: %w", pid, err)
	}
	return pid, nil
}
