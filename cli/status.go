package cli

import (
	"fmt"

	"github.com/mobile-next/swipedrag/commands"
	"github.com/mobile-next/swipedrag/server"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the drag state of a running tracker",
	Long:  `Queries the control server of a tracker started with 'run --listen'.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// GetString cannot fail for defined flags
		addr, _ := cmd.Flags().GetString("listen")

		response := commands.StatusCommand(addr)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Release the pointer button of a running tracker",
	Long:  `Force-ends the current drag of a tracker started with 'run --listen'.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("listen")

		response := commands.ReleaseCommand(addr)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(releaseCmd)

	statusCmd.Flags().String("listen", server.DefaultAddress, "address of the control server")
	releaseCmd.Flags().String("listen", server.DefaultAddress, "address of the control server")
}
