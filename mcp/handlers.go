package mcp

import (
	"context"
	"fmt"
	"math"

	"github.com/ludo-technologies/cmreport/domain"
	"github.com/ludo-technologies/cmreport/service"
	"github.com/mark3labs/mcp-go/mcp"
)

// HandlerSet exposes MCP tool handlers with shared dependencies.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a handler set.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	if deps == nil {
		deps = NewDependencies(nil, "")
	}
	return &HandlerSet{deps: deps}
}

// HandleConvertReport handles the convert_metrics_report tool
func (h *HandlerSet) HandleConvertReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	inputPath, ok := args["input_path"].(string)
	if !ok || inputPath == "" {
		return mcp.NewToolResultError("input_path parameter is required and must be a string"), nil
	}
	outputPath, ok := args["output_path"].(string)
	if !ok || outputPath == "" {
		return mcp.NewToolResultError("output_path parameter is required and must be a string"), nil
	}

	cfg, err := h.deps.ResolveConfig(inputPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load configuration: %v", err)), nil
	}

	uc, err := h.deps.BuildConvertUseCase(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create converter: %v", err)), nil
	}

	result, err := uc.ExecuteWithResult(ctx, domain.ConvertRequest{
		InputPath:  inputPath,
		OutputPath: outputPath,
	})
	if err != nil {
		return toolError("conversion failed", err), nil
	}

	return jsonResult(map[string]interface{}{
		"input_path":   result.InputPath,
		"output_path":  result.OutputPath,
		"format":       result.Format,
		"assembly":     result.Report.Assembly,
		"type_count":   len(result.Report.Types),
		"member_count": len(result.Report.Members),
	})
}

// HandleSummarizeReport handles the summarize_metrics_report tool
func (h *HandlerSet) HandleSummarizeReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	inputPath, ok := args["input_path"].(string)
	if !ok || inputPath == "" {
		return mcp.NewToolResultError("input_path parameter is required and must be a string"), nil
	}

	// Parse output_mode parameter (default: "summary")
	outputMode := "summary"
	if om, ok := args["output_mode"].(string); ok && om != "" {
		outputMode = om
	}
	if outputMode != "summary" && outputMode != "full" {
		return mcp.NewToolResultError(fmt.Sprintf("invalid output_mode: %s (must be summary or full)", outputMode)), nil
	}

	maxResults := 0
	if mr, ok := args["max_results"].(float64); ok && mr > 0 {
		maxResults = int(math.Min(mr, math.MaxInt32))
	}

	uc, err := h.deps.BuildConvertUseCase(nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create converter: %v", err)), nil
	}

	report, err := uc.Extract(ctx, inputPath)
	if err != nil {
		return toolError("extraction failed", err), nil
	}

	summary := service.Summarize(report, maxResults)
	if outputMode == "full" {
		return jsonResult(map[string]interface{}{
			"summary": summary,
			"report":  report,
		})
	}
	return jsonResult(summary)
}

// toolError reports err with its category so clients can tell input
// problems from malformed reports.
func toolError(prefix string, err error) *mcp.CallToolResult {
	categorized := service.NewErrorCategorizer().Categorize(err)
	if code := domain.ErrorCode(err); code != "" {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s [%s]: %v", prefix, categorized.Category, code, err))
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s: %s: %v", prefix, categorized.Category, err))
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	text, err := service.EncodeJSON(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}
