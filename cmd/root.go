package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the calsched application
var rootCmd = &cobra.Command{
	Use:   "calsched",
	Short: "Scheduling assistant MCP server backed by Google Calendar",
	Long: `calsched exposes scheduling tools over the Model Context Protocol (MCP)
so that AI assistants can resolve natural-language dates, check calendar
availability, and create, reschedule or delete meetings on the user's
Google Calendar.

It runs as an MCP server over stdio (default) or streamable HTTP.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "calsched version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
}
