package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Seif10284/crabcamera"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the Tauri commands of the plugin",
	Long:  `Prints the ten Tauri commands the CrabCamera plugin exposes, in catalog order.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmds := crabcamera.Commands()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(cmds); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding commands: %v\n", err)
				os.Exit(1)
			}
			return
		}

		for i, c := range cmds {
			fmt.Printf("%2d. %s\n", i+1, c.Signature())
		}
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
	commandsCmd.Flags().Bool("json", false, "Output the catalog as JSON")
}
