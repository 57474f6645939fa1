package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/advcontrol/pkg/resource"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerDashboardTool(srv, svc)
	registerAgendaTool(srv, svc)
	registerCasesTool(srv, svc)
	registerFinanceTool(srv, svc)
}

func registerDashboardTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_dashboard",
		mcp.WithDescription("Counters for today and this week plus alerts sorted by urgency."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Dashboard(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAgendaTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_deadlines",
		mcp.WithDescription("Deadlines, hearings and meetings for a day, or for a window starting on that day."),
		mcp.WithString("date",
			mcp.Description("Day as YYYY-MM-DD or DD/MM/YYYY. Defaults to today."),
		),
		mcp.WithString("window",
			mcp.Description("Optional look-ahead such as 3d or 1w. When set, every deadline in the window is returned."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date   string `json:"date"`
			Window string `json:"window"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.Agenda(ctx, args.Date, args.Window)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCasesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_cases",
		mcp.WithDescription("Tracked cases with status and priority."),
		mcp.WithString("status",
			mcp.Description("Only return cases with this status."),
			mcp.Enum(string(resource.CaseNew), string(resource.CaseInProgress), string(resource.CaseWaiting), string(resource.CaseDone)),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Status string `json:"status"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.Cases(ctx, args.Status)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerFinanceTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_financial",
		mcp.WithDescription("Receivables and payables with pending and overdue totals."),
		mcp.WithString("filter",
			mcp.Description("Restrict the record list by direction. Totals always cover every record."),
			mcp.Enum("all", "receivable", "payable"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Filter string `json:"filter"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.Finance(ctx, args.Filter)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
