package common

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/calsched/calsched/internal/instrumentation"
	"github.com/calsched/calsched/internal/server"
)

// InstrumentedToolHandler wraps a tool handler with metrics and audit logging.
// It records tool invocation metrics and logs the invocation for audit purposes.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(
	toolName string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return instrumented(toolName, "", sc, handler)
}

// InstrumentedToolHandlerWithOperation is like InstrumentedToolHandler but also
// records the Calendar API operation type for more detailed metrics.
//
// This handler records both:
//   - MCP tool invocation metrics (mcp_tool_invocations_total, mcp_tool_duration_seconds)
//   - Calendar API operation metrics (calendar_api_operations_total, calendar_api_operation_duration_seconds)
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandlerWithOperation("my_tool", instrumentation.OperationCreate, sc, handler))
func InstrumentedToolHandlerWithOperation(
	toolName string,
	operation string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return instrumented(toolName, operation, sc, handler)
}

func instrumented(
	toolName string,
	operation string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Metrics and audit logger may be nil if not configured
		metrics := sc.Metrics()
		auditLogger := sc.AuditLogger()

		if metrics == nil && auditLogger == nil {
			return handler(ctx, request)
		}

		start := time.Now()
		invocation := instrumentation.NewToolInvocation(toolName).
			WithSpanContext(ctx)
		if operation != "" {
			invocation.WithOperation(operation)
		}
		if userID := GetUserFromArgs(request.GetArguments()); userID != "" {
			invocation.WithUser(userID)
		}

		result, err := handler(ctx, request)
		duration := time.Since(start)

		// Tool handlers report domain failures through result.IsError and
		// reserve the error return for protocol-level problems; both count
		// as errors here.
		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
			if err != nil {
				invocation.CompleteWithError(err)
			} else {
				invocation.Complete(false, nil)
			}
		} else {
			invocation.CompleteSuccess()
		}

		if metrics != nil {
			metrics.RecordToolInvocation(ctx, toolName, status, duration)
			if operation != "" {
				metrics.RecordCalendarOperation(ctx, operation, status, duration)
			}
		}

		if auditLogger != nil {
			auditLogger.LogToolInvocation(invocation)
		}

		return result, err
	}
}
