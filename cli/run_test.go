package cli

import (
	"testing"

	"github.com/mobile-next/swipedrag/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunFlagsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "run"}
	cmd.Flags().StringVar(&devicePattern, "device-pattern", config.DefaultDevicePattern, "")
	cmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "")
	cmd.Flags().Float64Var(&commitDelay, "commit-delay", config.DefaultCommitDelay, "")
	cmd.Flags().StringVar(&backend, "backend", "xdotool", "")
	return cmd
}

func TestApplyRunFlags_OnlyChangedFlagsOverride(t *testing.T) {
	cmd := newRunFlagsCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--scale", "2.5", "--backend", "null"}))

	conf := config.Default()
	conf.DevicePattern = "elan"
	conf.CommitDelay = 0.5
	applyRunFlags(cmd, &conf)

	assert.Equal(t, "elan", conf.DevicePattern)
	assert.Equal(t, 0.5, conf.CommitDelay)
	assert.Equal(t, 2.5, conf.Scale)
	assert.Equal(t, "null", conf.Backend)
}

func TestApplyRunFlags_AllFlags(t *testing.T) {
	cmd := newRunFlagsCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--device-pattern", "synaptics",
		"--scale", "0.5",
		"--commit-delay", "0.8",
		"--backend", "xtest",
	}))

	conf := config.Default()
	applyRunFlags(cmd, &conf)

	assert.Equal(t, config.Config{
		DevicePattern: "synaptics",
		Scale:         0.5,
		CommitDelay:   0.8,
		Backend:       "xtest",
		XdotoolPath:   "xdotool",
		LibinputPath:  "libinput",
	}, conf)
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"run", "stop", "status", "release", "devices", "doctor", "config"} {
		assert.True(t, names[name], "missing %s command", name)
	}
}
