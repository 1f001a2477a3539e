// Package mcpserver exposes the organizer engine over the Model Context
// Protocol so an agent can categorize, preview and organize files through
// named tools.
package mcpserver

import (
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/agentic-research/tidy/internal/config"
	"github.com/agentic-research/tidy/internal/organize"
	"github.com/agentic-research/tidy/internal/rules"
)

// Version of the tidy MCP server.
const Version = "0.1.0"

// New builds the MCP server with the three organizer tools registered.
func New(cfg *config.Config, log *logrus.Logger) *server.MCPServer {
	h := NewHandler(organize.New(osfs.New("/"), rules.Default()), rules.Default(), cfg.DefaultDir, log)

	s := server.NewMCPServer("tidy", Version)

	s.AddTool(mcp.NewTool(
		"get_file_category",
		mcp.WithDescription("Get the category for a file based on its extension (Images, Documents, Videos, Code, or Others)."),
		mcp.WithString("filename",
			mcp.Description("The filename to categorize"),
			mcp.Required(),
		),
	), h.HandleGetFileCategory)

	s.AddTool(mcp.NewTool(
		"list_files",
		mcp.WithDescription("List the files in a directory grouped by category. Hidden files and subdirectories are skipped."),
		mcp.WithString("path",
			mcp.Description("Directory to scan (defaults to the configured directory)"),
		),
	), h.HandleListFiles)

	s.AddTool(mcp.NewTool(
		"organize_files",
		mcp.WithDescription("Organize the files in a directory by moving them into category folders. Use dry_run=true to preview changes without moving anything."),
		mcp.WithString("path",
			mcp.Description("Directory to organize (defaults to the configured directory)"),
		),
		mcp.WithBoolean("dry_run",
			mcp.Description("If true, preview changes without moving files"),
		),
	), h.HandleOrganizeFiles)

	return s
}
