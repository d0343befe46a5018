// Package schedule implements the deterministic scheduling core: resolving
// natural-language date expressions to concrete dates, building absolute UTC
// windows from clock strings and a timezone, computing free slots against
// busy intervals, and searching forward for the next viable slot when a
// requested window is fully booked.
//
// Everything in this package is a stateless request/response computation.
// Calendar access happens only through the Calendar and BusyLister interfaces
// injected by the caller; nothing is cached between calls, so every result
// reflects the collaborator's state at invocation time.
package schedule
