package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crabcamera",
	Short: "CrabCamera demonstration report",
	Long: `crabcamera prints the demonstration report of the CrabCamera plugin:
a cross-platform camera plugin for Tauri applications.

Run without arguments to print the full report.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Bare invocation behaves like the demo subcommand.
		runDemo(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("styled", false, "Render the report with terminal styling")
}
