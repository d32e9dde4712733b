package flightfeatures

import (
	"fmt"
	"strings"
	"time"
)

var naiveLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a form date-time value. Values without a zone offset,
// such as the browser datetime-local format, are read in loc (UTC when nil).
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// CalendarOf extracts month, day of month and day of week (Sunday = 1,
// Saturday = 7) in t's own location.
func CalendarOf(t time.Time) CalendarFields {
	return CalendarFields{
		Month:     int(t.Month()),
		Day:       t.Day(),
		DayOfWeek: int(t.Weekday()) + 1,
	}
}

func DeriveCalendarFields(value string, loc *time.Location) (CalendarFields, error) {
	t, err := ParseTimestamp(value, loc)
	if err != nil {
		return CalendarFields{}, err
	}
	return CalendarOf(t), nil
}

// ToHHMM packs the local hour and minute of t as hour*100 + minute.
func ToHHMM(t time.Time) int {
	return t.Hour()*100 + t.Minute()
}

type TimeOfDay struct {
	Hours   int
	Minutes int
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hours: t.Hour(), Minutes: t.Minute()}
}

// ParseTimeOfDay reads a "15:04" style clock value.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}
	return TimeOfDayOf(t), nil
}

// ToMinutesSinceMidnight returns hours*60 + minutes, in [0, 1439].
func ToMinutesSinceMidnight(tod TimeOfDay) (int, error) {
	if tod.Hours < 0 || tod.Hours > 23 || tod.Minutes < 0 || tod.Minutes > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeOfDay, tod.Hours, tod.Minutes)
	}
	return tod.Hours*60 + tod.Minutes, nil
}
