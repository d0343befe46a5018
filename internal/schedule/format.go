package schedule

import "time"

// Layouts used whenever a slot or event time is surfaced to a caller.
const (
	instantLayout = "Monday, January 02 at 03:04 PM MST"
	clockLayout   = "03:04 PM (MST)"
)

// FormatInstant renders an instant in the given zone with weekday, month,
// day, 12-hour time and zone abbreviation, e.g.
// "Friday, June 27 at 02:00 PM EDT".
func FormatInstant(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(instantLayout)
}

// FormatClock renders just the 12-hour time of an instant in the given zone,
// e.g. "02:00 PM (EDT)".
func FormatClock(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(clockLayout)
}

// LoadLocation resolves an IANA timezone identifier, returning a
// TimezoneError for anything the zone database does not know.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "UTC" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &TimezoneError{Zone: name, Err: err}
	}
	return loc, nil
}
