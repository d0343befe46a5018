// Package server holds the runtime state shared by MCP tool handlers.
//
// ServerContext owns the Google Calendar client, the persistent home
// timezone store, and the optional metrics/audit hooks. MetricsServer
// exposes Prometheus metrics on a dedicated port so operational data is
// kept off the MCP transport.
package server
