// Package logging provides structured logging utilities for the calsched
// application.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - PII sanitization (user ID anonymization)
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "check_availability")
//	logger.Info("availability computed",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("timezone updated",
//	    logging.UserHash(userID))
//
// # Security Considerations
//
// User IDs are hashed to prevent PII leakage while allowing correlation,
// and OAuth tokens are never logged directly.
package logging
