package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, h *handlers) {
	registerListTasksTool(srv, h)
	registerAddTaskTool(srv, h)
	registerEditTaskTool(srv, h)
	registerToggleTaskTool(srv, h)
	registerDeleteTaskTool(srv, h)
}

func registerListTasksTool(srv *server.MCPServer, h *handlers) {
	tool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List every task in display order."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tasks := h.list()
		return toJSONResult(map[string]any{
			"tasks": tasks,
			"count": len(tasks),
		})
	})
}

func registerAddTaskTool(srv *server.MCPServer, h *handlers) {
	tool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Add a task. Text that matches an existing task once whitespace is removed is rejected."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Task text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := h.add(ctx, text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerEditTaskTool(srv *server.MCPServer, h *handlers) {
	tool := mcp.NewTool(
		"edit_task",
		mcp.WithDescription("Replace the label of a task."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to modify."),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("New task text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := h.edit(ctx, id, text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerToggleTaskTool(srv *server.MCPServer, h *handlers) {
	tool := mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Complete or reopen a task. Completed tasks are removed shortly after unless reopened."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to toggle."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := h.toggle(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerDeleteTaskTool(srv *server.MCPServer, h *handlers) {
	tool := mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Delete a task."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := h.remove(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
