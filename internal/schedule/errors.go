package schedule

import (
	"fmt"
	"strings"
)

// DateParseError reports a date expression that no resolution rule and no
// fallback parser could turn into a concrete date.
type DateParseError struct {
	Expression string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("unable to parse a valid date from the input: '%s'", e.Expression)
}

// TimeFormatError reports a clock string that violates the expected contract.
type TimeFormatError struct {
	Input  string
	Reason string
}

func (e *TimeFormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid time '%s': %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid time '%s': expected a format like '9:00AM'", e.Input)
}

// TimezoneError reports an invalid IANA timezone identifier.
type TimezoneError struct {
	Zone string
	Err  error
}

func (e *TimezoneError) Error() string {
	return fmt.Sprintf("invalid timezone '%s': %v", e.Zone, e.Err)
}

func (e *TimezoneError) Unwrap() error { return e.Err }

// NotFoundError reports that no event matched a name within the searched scope.
type NotFoundError struct {
	Name  string
	Scope string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no event named '%s' found %s", e.Name, e.Scope)
}

// AmbiguousError reports that several events matched a name. The caller must
// narrow the search with a date; this core never picks a candidate itself.
type AmbiguousError struct {
	Name    string
	Options []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("found multiple events named '%s'. Please be more specific by providing the date. Options found: %s",
		e.Name, strings.Join(e.Options, "; "))
}

// CollaboratorError wraps a failed calendar collaborator call. It is never
// retried here; it propagates verbatim to the tool boundary.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("calendar %s failed: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// PersistenceError wraps a timezone store read or write failure. Read
// failures are absorbed into an empty mapping by the store itself; only
// write failures surface.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("timezone store %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
