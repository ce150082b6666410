package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, h *handlers) {
	registerTasksResource(srv, h)
	registerTaskTemplate(srv, h)
}

func registerTasksResource(srv *server.MCPServer, h *handlers) {
	resource := mcp.NewResource(
		"todo://tasks",
		"Tasks",
		mcp.WithResourceDescription("The whole to-do list in display order."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		tasks := h.list()
		payload := map[string]any{
			"tasks": tasks,
			"count": len(tasks),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerTaskTemplate(srv *server.MCPServer, h *handlers) {
	template := mcp.NewResourceTemplate(
		"todo://tasks/{id}",
		"Task Details",
		mcp.WithTemplateDescription("A single task by identifier."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments["id"])
		if id == "" {
			return nil, fmt.Errorf("task id is required")
		}
		t, idx := h.list().Find(id)
		if idx < 0 {
			return nil, fmt.Errorf("task %q not found", id)
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"task": t})
	})
}

// templateArg unwraps a URI template variable, which may arrive as a string
// or a single-element slice.
func templateArg(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		if len(val) > 0 {
			return val[0]
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
