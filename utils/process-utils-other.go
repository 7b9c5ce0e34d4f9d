//go:build !unix

package utils

import (
	"os/exec"
)

// ConfigureDetachedProcAttr is a no-op where process groups are unavailable.
func ConfigureDetachedProcAttr(cmd *exec.Cmd) {
}

// KillProcessGroup kills only the direct child on platforms without process groups.
func KillProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
