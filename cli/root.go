package cli

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/mobile-next/swipedrag/config"
	"github.com/mobile-next/swipedrag/utils"
	"github.com/spf13/cobra"
)

var version = "dev"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "swipedrag",
	Short: "Turn three finger touchpad swipes into click-and-drag",
	Long: `Watches a touchpad through libinput and emulates a held primary button
while a three finger swipe moves the pointer. Short gaps between swipes
keep the drag alive.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// GetVersion returns the build version
func GetVersion() string {
	return version
}

func initConfig() {
	utils.SetVerbose(verbose)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", fmt.Sprintf("config file (default %s)", config.DefaultPath()))
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// printJson is a helper function to print JSON responses
func printJson(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(jsonData))
}
