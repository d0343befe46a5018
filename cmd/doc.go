// Package cmd implements the command-line interface for calsched.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing the scheduling tools
//   - auth: Authorize Google Calendar access and cache the OAuth token
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
