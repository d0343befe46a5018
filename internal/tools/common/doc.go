// Package common provides shared helpers for MCP tool handlers:
// argument extraction and the instrumentation wrapper that records
// metrics and audit logs per tool invocation.
package common
