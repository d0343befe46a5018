// Package instrumentation provides OpenTelemetry instrumentation for the
// calsched MCP server.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for MCP tool invocations and Calendar API calls
//   - Distributed tracing for tool and Calendar API request flows
//   - Prometheus metrics export via /metrics endpoint on a dedicated port
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// MCP Tool Metrics:
//   - mcp_tool_invocations_total: Counter of MCP tool invocations by tool name and status
//   - mcp_tool_duration_seconds: Histogram of MCP tool execution durations
//
// Calendar API Metrics:
//   - calendar_api_operations_total: Counter of Calendar API operations by operation and status
//   - calendar_api_operation_duration_seconds: Histogram of Calendar API operation durations
//
// OAuth Metrics:
//   - oauth_token_refresh_total: Counter of token refresh attempts by result
//
// # Tracing
//
// Distributed tracing spans are created for:
//   - MCP tool invocations (tool.<name>)
//   - Calendar API calls (calendar.<operation>)
//
// # Configuration
//
// Configuration is driven by environment variables with sensible defaults;
// see DefaultConfig for the full list. The Prometheus exporter is the
// default for metrics and tracing is disabled unless TRACING_EXPORTER
// is set.
//
// # Audit Logging
//
// ToolInvocation and AuditLogger provide a structured audit trail of every
// tool call. User identifiers are anonymized unless PII inclusion is
// explicitly enabled.
package instrumentation
