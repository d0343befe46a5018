// Package schedule_tools implements the MCP tools of the scheduling
// assistant: the current date, per-user home timezone preferences,
// availability checks with a seven-day fallback search, and the meeting
// lifecycle (create, reschedule, delete) against Google Calendar.
//
// Handlers parse tool arguments and delegate to core functions that take a
// schedule.Calendar, so the scheduling logic is testable without a live
// calendar service. Domain failures are reported as MCP error results with
// natural-language messages the calling agent can relay verbatim.
package schedule_tools
