package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

var (
	strictClockPattern = regexp.MustCompile(`^(1[0-2]|0?[1-9]):([0-5][0-9])(AM|PM)$`)

	looseMeridiemPattern = regexp.MustCompile(`(?i)\b(\d{1,2}(?::\d{2})?\s*(?:am|pm))\b`)
	loose24Pattern       = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
)

// ParseClockStrict parses a 12-hour clock string under the strict contract
// used by availability checks: after stripping all whitespace the input must
// read H:MMAM or H:MMPM, minutes mandatory. "9:00AM" and "9:00 am" pass,
// "9AM" does not. Stricter than ExtractClock.
func ParseClockStrict(s string) (Clock, error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	m := strictClockPattern.FindStringSubmatch(normalized)
	if m == nil {
		return Clock{}, &TimeFormatError{Input: s}
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return clockFrom12Hour(hour, minute, m[3]), nil
}

// ExtractClock pulls a time of day out of a longer phrase ("next friday at
// 4pm", "tomorrow 14:30"). A 12-hour form with meridiem wins over a bare
// 24-hour form. Looser than ParseClockStrict, which guards the availability
// window arguments.
func ExtractClock(expr string) (Clock, error) {
	if m := looseMeridiemPattern.FindStringSubmatch(expr); m != nil {
		normalized := strings.ToUpper(strings.Join(strings.Fields(m[1]), ""))
		meridiem := normalized[len(normalized)-2:]
		body := normalized[:len(normalized)-2]

		var hour, minute int
		var err error
		if h, mm, ok := strings.Cut(body, ":"); ok {
			hour, err = strconv.Atoi(h)
			if err == nil {
				minute, err = strconv.Atoi(mm)
			}
		} else {
			hour, err = strconv.Atoi(body)
		}
		if err != nil || hour < 1 || hour > 12 || minute < 0 || minute > 59 {
			return Clock{}, &TimeFormatError{Input: m[1], Reason: "unrecognized 12-hour time"}
		}
		return clockFrom12Hour(hour, minute, meridiem), nil
	}

	if m := loose24Pattern.FindStringSubmatch(expr); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return Clock{}, &TimeFormatError{Input: m[0], Reason: "unrecognized 24-hour time"}
		}
		return Clock{Hour: hour, Minute: minute}, nil
	}

	return Clock{}, &TimeFormatError{Input: expr, Reason: "no time of day found"}
}

func clockFrom12Hour(hour, minute int, meridiem string) Clock {
	if hour == 12 {
		hour = 0
	}
	if meridiem == "PM" {
		hour += 12
	}
	return Clock{Hour: hour, Minute: minute}
}

// BuildWindow combines a resolved date with strict start/end clock strings
// and a timezone into an absolute UTC interval.
func BuildWindow(date CalendarDate, startStr, endStr string, loc *time.Location) (Interval, error) {
	start, err := ParseClockStrict(startStr)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseClockStrict(endStr)
	if err != nil {
		return Interval{}, err
	}

	iv := Interval{
		Start: date.At(start.Hour, start.Minute, loc).UTC(),
		End:   date.At(end.Hour, end.Minute, loc).UTC(),
	}
	if !iv.Valid() {
		return Interval{}, fmt.Errorf("window start %s must fall before end %s", startStr, endStr)
	}
	return iv, nil
}
