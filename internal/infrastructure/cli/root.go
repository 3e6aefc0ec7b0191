package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "grindchain",
	Version: Version,
	Short:   "Command-line client for the GrindChain task service",
	Long: `grindchain is a command-line client for the GrindChain task service.
It keeps a locally displayed copy of your task list, applies roadmap
checkbox changes immediately, and reconciles them with the server in the
background.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().String("server", "", "server base URL (overrides config)")
	RootCmd.PersistentFlags().String("token", "", "bearer token (overrides config)")
	RootCmd.PersistentFlags().String("config", "", "path to config file")
}
