package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Seif10284/crabcamera"
	"github.com/Seif10284/crabcamera/internal/presentation/tui"
	"github.com/Seif10284/crabcamera/internal/report"
	"github.com/Seif10284/crabcamera/pkg/catalog"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the full demonstration report",
	Long: `Writes the demonstration report to standard output.

The default output is plain text, byte-identical on every run. With
--styled (and a terminal on stdout) the report is rendered as styled
markdown behind the CrabCamera banner. --markdown prints the raw
markdown source instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDemo(cmd)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().Bool("styled", false, "Render the report with terminal styling")
	demoCmd.Flags().Bool("markdown", false, "Print the report as raw markdown")
}

func runDemo(cmd *cobra.Command) {
	styled, _ := cmd.Flags().GetBool("styled")
	markdown, _ := cmd.Flags().GetBool("markdown")

	if markdown {
		fmt.Print(report.Markdown(catalog.Default()))
		return
	}

	if styled && tui.IsTerminal(os.Stdout) {
		tui.WriteBanner(os.Stdout, crabcamera.Version)

		render := tui.NewRenderer(tui.Width(os.Stdout))
		out, err := render(report.Markdown(catalog.Default()))
		if err == nil {
			fmt.Print(out)
			return
		}
		// Styled rendering is best-effort; fall through to plain.
	}

	if err := crabcamera.Demonstrate(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}
}
