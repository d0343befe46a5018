package schedule

import (
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// CalendarDate is a concrete year/month/day. Once produced by ResolveDate it
// is never ambiguous; attaching a clock and a zone turns it into an instant.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// String renders the date in ISO form (2006-01-02).
func (d CalendarDate) String() string {
	return d.At(0, 0, time.UTC).Format("2006-01-02")
}

// At returns the instant at the given wall clock on this date in loc.
func (d CalendarDate) At(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, loc)
}

// AddDays returns the date n days later, normalized across month boundaries.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.At(0, 0, time.UTC).AddDate(0, 0, n))
}

// Weekday returns the day of the week this date falls on.
func (d CalendarDate) Weekday() time.Weekday {
	return d.At(0, 0, time.UTC).Weekday()
}

// Before reports whether d falls strictly before o.
func (d CalendarDate) Before(o CalendarDate) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var (
	weekdayPattern = regexp.MustCompile(`(?:\b(this|next)\s+)?\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	yearPattern    = regexp.MustCompile(`\b\d{4}\b`)
)

// dateRule attempts to resolve a normalized (lowercased, trimmed) expression
// against the local reference time. Rules are tried in order; the first match
// wins and the final fallback is the fuzzy parser.
type dateRule func(expr string, local time.Time) (CalendarDate, bool)

var dateRules = []dateRule{
	resolveISO,
	resolveLiteral,
	resolveWeekday,
	resolveMonthEnd,
	resolveLastBusinessDay,
	resolveNextMonthStart,
}

// ResolveDate resolves a natural-language date expression to a concrete date,
// anchored at now in the reference location. A nil loc means UTC.
func ResolveDate(expr string, loc *time.Location, now time.Time) (CalendarDate, error) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	normalized := strings.ToLower(strings.TrimSpace(expr))

	for _, rule := range dateRules {
		if d, ok := rule(normalized, local); ok {
			return d, nil
		}
	}
	return resolveFuzzy(expr, local)
}

// AnchoredToDay reports whether the expression names a concrete day
// ("today", "tomorrow", or a weekday). Expressions without such an anchor
// are candidates for shifting forward when they resolve to a past instant.
func AnchoredToDay(expr string) bool {
	normalized := strings.ToLower(expr)
	if strings.Contains(normalized, "today") || strings.Contains(normalized, "tomorrow") {
		return true
	}
	for name := range weekdays {
		if strings.Contains(normalized, name) {
			return true
		}
	}
	return false
}

// resolveISO handles explicit YYYY-MM-DD dates, which need no reference time.
func resolveISO(expr string, _ time.Time) (CalendarDate, bool) {
	t, err := time.Parse(time.DateOnly, expr)
	if err != nil {
		return CalendarDate{}, false
	}
	return DateOf(t), true
}

func resolveLiteral(expr string, local time.Time) (CalendarDate, bool) {
	switch expr {
	case "today":
		return DateOf(local), true
	case "tomorrow":
		return DateOf(local).AddDays(1), true
	}
	return CalendarDate{}, false
}

// resolveWeekday handles "friday", "this friday", "next friday". A bare
// weekday name never resolves to today: when today already is that weekday
// the next occurrence is a week out. "this" keeps today reachable and
// "next" always adds a full week beyond the next natural occurrence.
func resolveWeekday(expr string, local time.Time) (CalendarDate, bool) {
	m := weekdayPattern.FindStringSubmatch(expr)
	if m == nil {
		return CalendarDate{}, false
	}
	qualifier, name := m[1], m[2]
	target := weekdays[name]

	daysAhead := (int(target) - int(local.Weekday()) + 7) % 7
	switch {
	case qualifier == "next":
		daysAhead += 7
	case qualifier == "" && daysAhead == 0:
		daysAhead = 7
	}
	return DateOf(local).AddDays(daysAhead), true
}

func resolveMonthEnd(expr string, local time.Time) (CalendarDate, bool) {
	if !strings.Contains(expr, "last day of this month") && !strings.Contains(expr, "end of this month") {
		return CalendarDate{}, false
	}
	return lastDayOfMonth(local), true
}

// resolveLastBusinessDay shifts the last day of the month back over a
// weekend: Saturday moves one day back, Sunday two.
func resolveLastBusinessDay(expr string, local time.Time) (CalendarDate, bool) {
	if !strings.Contains(expr, "last weekday of this month") {
		return CalendarDate{}, false
	}
	last := lastDayOfMonth(local)
	switch last.Weekday() {
	case time.Saturday:
		last = last.AddDays(-1)
	case time.Sunday:
		last = last.AddDays(-2)
	}
	return last, true
}

func resolveNextMonthStart(expr string, local time.Time) (CalendarDate, bool) {
	if !strings.Contains(expr, "first day of next month") && !strings.Contains(expr, "next month start") {
		return CalendarDate{}, false
	}
	y, m, _ := local.Date()
	return DateOf(time.Date(y, m+1, 1, 0, 0, 0, 0, local.Location())), true
}

func lastDayOfMonth(local time.Time) CalendarDate {
	y, m, _ := local.Date()
	// Day zero of the following month is the last day of this one.
	return DateOf(time.Date(y, m+1, 0, 0, 0, 0, 0, local.Location()))
}

var fuzzyParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// resolveFuzzy is the terminal fallback for expressions no rule recognizes
// ("june 5th", "in three days"). When the expression names no explicit year
// and the parse lands in the past, the date is rolled forward a year so that
// resolution prefers future dates.
func resolveFuzzy(expr string, local time.Time) (CalendarDate, error) {
	r, err := fuzzyParser.Parse(expr, local)
	if err != nil || r == nil {
		return CalendarDate{}, &DateParseError{Expression: expr}
	}
	d := DateOf(r.Time.In(local.Location()))
	if d.Before(DateOf(local)) && !yearPattern.MatchString(expr) {
		d = DateOf(d.At(0, 0, time.UTC).AddDate(1, 0, 0))
	}
	return d, nil
}
