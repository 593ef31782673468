// Package mcp exposes the demonstration report as MCP tools, so AI agents
// can pull the CrabCamera catalog the same way the CLI prints it.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Seif10284/crabcamera/internal/report"
	"github.com/Seif10284/crabcamera/internal/stats"
	"github.com/Seif10284/crabcamera/pkg/catalog"
)

// CommandsResponse is the structured result of the list_commands tool.
type CommandsResponse struct {
	Commands []catalog.Command `json:"commands" jsonschema_description:"The Tauri command catalog, in demo order"`
	Count    int               `json:"count" jsonschema_description:"Number of commands (always 10)"`
}

// Server wraps the catalog and exposes it as an MCP Server.
type Server struct {
	catalog   catalog.Catalog
	recorder  stats.Recorder
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(c catalog.Catalog, recorder stats.Recorder, logger *slog.Logger, version string) *Server {
	s := &Server{
		catalog:   c,
		recorder:  recorder,
		logger:    logger,
		mcpServer: server.NewMCPServer("crabcamera-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: show_report
	reportTool := mcp.NewTool("show_report",
		mcp.WithDescription("Return the full CrabCamera demonstration report as plain text."),
	)
	s.mcpServer.AddTool(reportTool, s.handleShowReport)

	// TOOL: list_commands
	commandsTool := mcp.NewTool("list_commands",
		mcp.WithDescription("List the Tauri commands exposed by the CrabCamera plugin."),
		mcp.WithOutputSchema[CommandsResponse](),
	)
	s.mcpServer.AddTool(commandsTool, mcp.NewStructuredToolHandler(s.handleListCommands))
}

func (s *Server) handleShowReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.record(ctx, "show_report")
	return mcp.NewToolResultText(report.Plain(s.catalog)), nil
}

func (s *Server) handleListCommands(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CommandsResponse, error) {
	s.record(ctx, "list_commands")
	return CommandsResponse{
		Commands: s.catalog.Commands,
		Count:    len(s.catalog.Commands),
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: crabcamera://catalog
	s.mcpServer.AddResource(mcp.NewResource("crabcamera://catalog", "Demonstration Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal catalog: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "crabcamera://catalog",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

func (s *Server) record(ctx context.Context, tool string) {
	if _, err := s.recorder.Record(ctx, "mcp"); err != nil {
		s.logger.Warn("delivery recording failed", "error", err, "tool", tool)
	}
}
