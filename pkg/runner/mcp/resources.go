package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/advcontrol/pkg/resource"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerDashboardResource(srv, svc)
	registerCollectionTemplate(srv, svc)
}

func registerDashboardResource(srv *server.MCPServer, svc *Service) {
	res := mcp.NewResource(
		"advcontrol://dashboard",
		"Dashboard",
		mcp.WithResourceDescription("Practice overview with counters and alerts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(res, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dto, err := svc.Dashboard(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func registerCollectionTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"advcontrol://collections/{name}",
		"Collection",
		mcp.WithTemplateDescription("A full collection: prazos, casos, financeiro or dashboard."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		kind, err := Kind(argument(request.Params.Arguments, "name"))
		if err != nil {
			return nil, err
		}
		payload, err := svc.Collection(ctx, kind)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// Collection returns the raw data for kind.
func (s *Service) Collection(ctx context.Context, kind resource.Kind) (any, error) {
	switch kind {
	case resource.KindDashboard:
		return s.Dashboard(ctx)
	case resource.KindCases:
		return s.Cases(ctx, "")
	case resource.KindFinancial:
		return s.Finance(ctx, "")
	case resource.KindDeadlines:
		a := s.Screens.Agenda
		a.Refresh(ctx)
		v := a.View()
		return map[string]any{"deadlines": v.Data, "meta": meta(v, a.Notice())}, nil
	}
	return nil, fmt.Errorf("unknown collection %q", kind)
}

// argument reads a template variable, which mcp-go may deliver as a string or
// a single-element slice.
func argument(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
