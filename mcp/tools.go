package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all cmreport MCP tools with the server
func RegisterTools(s *server.MCPServer, h *HandlerSet) {
	if h == nil {
		h = NewHandlerSet(nil)
	}

	s.AddTool(mcp.NewTool("convert_metrics_report",
		mcp.WithDescription("Convert a code metrics XML report to CSV or HTML. The format follows the output extension (.htm/.html gives HTML, anything else CSV)"),
		mcp.WithString("input_path",
			mcp.Required(),
			mcp.Description("Path to the code metrics XML report")),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("Path of the file to write; overwritten if it exists")),
	), h.HandleConvertReport)

	s.AddTool(mcp.NewTool("summarize_metrics_report",
		mcp.WithDescription("Summarize a code metrics XML report: record counts, severity distribution per metric and hotspots"),
		mcp.WithString("input_path",
			mcp.Required(),
			mcp.Description("Path to the code metrics XML report")),
		mcp.WithString("output_mode",
			mcp.Enum("summary", "full"),
			mcp.Description("summary returns counts and hotspots, full also includes every extracted record (default: summary)")),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of hotspots to return, 0 = no limit (default: 0)")),
	), h.HandleSummarizeReport)
}
