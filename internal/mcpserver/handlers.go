package mcpserver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/agentic-research/tidy/internal/organize"
	"github.com/agentic-research/tidy/internal/report"
	"github.com/agentic-research/tidy/internal/rules"
)

// Handler serves the organizer tool calls. Engine-level soft failures (a
// missing directory, per-file move errors) are rendered into the text
// result rather than returned as protocol errors; only malformed arguments
// fail the call itself.
type Handler struct {
	org        *organize.Organizer
	table      rules.Table
	defaultDir string
	log        *logrus.Logger
}

// NewHandler wires a Handler around an engine. defaultDir is used when a
// tool call names no path.
func NewHandler(org *organize.Organizer, table rules.Table, defaultDir string, log *logrus.Logger) *Handler {
	return &Handler{org: org, table: table, defaultDir: defaultDir, log: log}
}

// targetDir resolves the optional path argument.
func (h *Handler) targetDir(request mcp.CallToolRequest) string {
	if p, err := request.RequireString("path"); err == nil && p != "" {
		return p
	}
	return h.defaultDir
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// HandleGetFileCategory categorizes a single filename. Pure lookup, always
// succeeds for any filename.
func (h *Handler) HandleGetFileCategory(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	filename, err := request.RequireString("filename")
	if err != nil {
		return nil, err
	}

	category := h.table.Categorize(filename)
	return textResult(fmt.Sprintf("File: %s\nCategory: %s", filename, category)), nil
}

// HandleListFiles scans the target directory and reports its files grouped
// by category. A missing directory yields the "nothing found" message, not
// an error.
func (h *Handler) HandleListFiles(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	dir := h.targetDir(request)

	grouping := h.org.Scan(dir)
	h.log.WithFields(logrus.Fields{
		"dir":   dir,
		"files": grouping.Total(),
	}).Debug("scan complete")

	return textResult(report.RenderGrouping(grouping, false)), nil
}

// HandleOrganizeFiles runs the organizer against the target directory,
// optionally as a dry run.
func (h *Handler) HandleOrganizeFiles(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	dir := h.targetDir(request)

	dryRun := false
	if v, err := request.RequireBool("dry_run"); err == nil {
		dryRun = v
	}

	res := h.org.Organize(dir, dryRun)
	h.log.WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"dir":     dir,
		"dry_run": dryRun,
		"moved":   len(res.MovedFiles),
		"errors":  len(res.Errors),
	}).Info("organize complete")

	return textResult(report.RenderOrganize(res, false)), nil
}
