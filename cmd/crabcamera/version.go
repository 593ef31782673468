package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Seif10284/crabcamera"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of crabcamera",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("crabcamera version %s\n", strings.TrimSpace(crabcamera.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
