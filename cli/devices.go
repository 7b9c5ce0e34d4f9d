package cli

import (
	"fmt"

	"github.com/mobile-next/swipedrag/commands"
	"github.com/mobile-next/swipedrag/config"
	"github.com/mobile-next/swipedrag/devices"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List libinput devices",
	Long:  `Lists the devices reported by 'libinput list-devices' and marks those matching the tracked device pattern.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load(resolvedConfigPath())
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("device-pattern") {
			conf.DevicePattern = devicePattern
		}

		response := commands.DevicesCommand(devices.LibinputLister(conf.LibinputPath), conf.DevicePattern)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)

	devicesCmd.Flags().StringVar(&devicePattern, "device-pattern", config.DefaultDevicePattern, "substring of the device name to mark as tracked")
}
