package events

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mobile-next/swipedrag/utils"
	"github.com/sirupsen/logrus"
)

// ErrSourceTerminated is returned by Next once the backing process has exited
// and its remaining output was delivered.
var ErrSourceTerminated = errors.New("event source terminated")

// drainTimeout bounds how long output is still read after the process exits,
// in case a grandchild keeps the pipe open.
const drainTimeout = 250 * time.Millisecond

// maxLineSize is the longest line delivered; longer lines are skipped whole.
const maxLineSize = 64 * 1024

// Source yields output lines of a long running process, one at a time.
// It cannot be restarted.
type Source struct {
	ID string

	cmd   *exec.Cmd
	lines chan string
	done  chan struct{}
	quit  chan struct{}

	mu      sync.Mutex
	waitErr error
	stopped bool

	log *logrus.Entry
}

// DebugEventsCommand builds the line-buffered libinput command for one device
func DebugEventsCommand(libinputPath, device string) *exec.Cmd {
	if libinputPath == "" {
		libinputPath = "libinput"
	}
	return exec.Command("stdbuf", "-oL", "--", libinputPath, "debug-events", "--device", device)
}

// Start runs cmd and begins reading its stdout. Stderr is discarded unless
// cmd.Stderr is already set. Cancelling ctx kills the process group.
func Start(ctx context.Context, cmd *exec.Cmd) (*Source, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create output pipe: %w", err)
	}

	cmd.Stdout = w
	utils.ConfigureDetachedProcAttr(cmd)

	s := &Source{
		ID:    uuid.New().String(),
		cmd:   cmd,
		lines: make(chan string, 64),
		done:  make(chan struct{}),
		quit:  make(chan struct{}),
	}
	s.log = utils.Logger().WithFields(logrus.Fields{"source": s.ID, "command": cmd.Path})

	if err := cmd.Start(); err != nil {
		_ = r.Close()
		_ = w.Close()
		return nil, fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}
	// the child holds its own copy of the write end
	_ = w.Close()

	s.log.WithField("pid", cmd.Process.Pid).Debug("event source started")

	go s.read(r)
	go s.wait(r)
	go s.watch(ctx)

	return s, nil
}

func (s *Source) read(r *os.File) {
	defer close(s.lines)
	defer r.Close()

	reader := bufio.NewReader(r)
	var line []byte
	oversized := false
	for {
		chunk, isPrefix, err := reader.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.log.WithError(err).Debug("event source output closed")
			}
			return
		}

		if !oversized && len(line)+len(chunk) > maxLineSize {
			oversized = true
			line = line[:0]
		}
		if !oversized {
			line = append(line, chunk...)
		}
		if isPrefix {
			continue
		}

		if oversized {
			s.log.WithField("limit", maxLineSize).Debug("skipping oversized line")
			oversized = false
			continue
		}

		text := string(line)
		line = line[:0]
		select {
		case s.lines <- text:
		case <-s.quit:
			return
		}
	}
}

func (s *Source) wait(r *os.File) {
	err := s.cmd.Wait()

	s.mu.Lock()
	s.waitErr = err
	s.mu.Unlock()

	// deliver what is still buffered, then give up on the pipe
	_ = r.SetReadDeadline(time.Now().Add(drainTimeout))

	s.log.WithError(err).Debug("event source process exited")
	close(s.done)
}

func (s *Source) watch(ctx context.Context) {
	select {
	case <-ctx.Done():
		_ = s.Stop()
	case <-s.done:
	}
}

// Next blocks until a line is available, the process exited, or ctx is done.
func (s *Source) Next(ctx context.Context) (string, error) {
	select {
	case line, ok := <-s.lines:
		if !ok {
			select {
			case <-s.done:
				return "", ErrSourceTerminated
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Done is closed when the backing process has exited
func (s *Source) Done() <-chan struct{} {
	return s.done
}

// Err returns the process exit error, if any, after Done is closed
func (s *Source) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waitErr
}

// Stop kills the backing process. It is safe to call more than once.
func (s *Source) Stop() error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	close(s.quit)
	s.mu.Unlock()

	s.log.Debug("stopping event source")
	err := utils.KillProcessGroup(s.cmd)

	select {
	case <-s.done:
		// the group may already be gone
		return nil
	default:
	}

	if err != nil {
		return fmt.Errorf("failed to kill event source: %w", err)
	}
	return nil
}
