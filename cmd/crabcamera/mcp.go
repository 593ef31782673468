package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Seif10284/crabcamera"
	mcpadapter "github.com/Seif10284/crabcamera/internal/adapters/mcp"
	"github.com/Seif10284/crabcamera/internal/logging"
	"github.com/Seif10284/crabcamera/internal/stats"
	"github.com/Seif10284/crabcamera/pkg/catalog"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts an MCP server over stdio exposing the demonstration report.

Tools:
- show_report: the full plain-text report
- list_commands: the structured Tauri command catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		// Ensure logs don't corrupt JSON-RPC on Stdout.
		log.SetOutput(os.Stderr)
		logger := logging.New(slog.LevelInfo)

		srv := mcpadapter.NewServer(catalog.Default(), stats.NewMemoryRecorder(), logger, crabcamera.Version)

		logger.Info("Starting CrabCamera MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			logger.Error("MCP Server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
