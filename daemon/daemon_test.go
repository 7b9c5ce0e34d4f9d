package daemon

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimePaths(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	assert.Equal(t, "/run/user/1000/swipedrag", RuntimeDir())
	assert.Equal(t, "/run/user/1000/swipedrag/swipedrag.pid", PidFile())
	assert.Equal(t, "/run/user/1000/swipedrag/swipedrag.log", LogFile())
}

func TestStop_NoPidFile(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", filepath.Join(t.TempDir(), "runtime"))

	_, err := Stop()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no background process is running")
}

func TestRelease_WithoutDaemonIsNoop(t *testing.T) {
	assert.NoError(t, Release())
}
