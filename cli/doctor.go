package cli

import (
	"fmt"

	"github.com/mobile-next/swipedrag/commands"
	"github.com/mobile-next/swipedrag/config"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run system diagnostics",
	Long:  `Checks for libinput, stdbuf, xdotool and an X display, using the tool paths from the config file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load(resolvedConfigPath())
		if err != nil {
			return err
		}

		response := commands.DoctorCommand(GetVersion(), conf)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
