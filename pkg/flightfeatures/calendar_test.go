package flightfeatures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCalendarFields_KnownFriday(t *testing.T) {
	got, err := DeriveCalendarFields("2024-03-15T10:30", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, CalendarFields{Month: 3, Day: 15, DayOfWeek: 6}, got)
}

func TestDeriveCalendarFields_SundayIsOneSaturdayIsSeven(t *testing.T) {
	sunday, err := DeriveCalendarFields("2024-03-17", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, sunday.DayOfWeek)

	saturday, err := DeriveCalendarFields("2024-03-16 23:59:59", nil)
	require.NoError(t, err)
	assert.Equal(t, 7, saturday.DayOfWeek)
}

func TestDeriveCalendarFields_InvalidTimestamp(t *testing.T) {
	for _, value := range []string{"", "   ", "yesterday", "2024-13-01T10:00", "2024-02-30", "15/03/2024"} {
		_, err := DeriveCalendarFields(value, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidTimestamp, "value %q", value)
	}
}

func TestParseTimestamp_Layouts(t *testing.T) {
	sydney := time.FixedZone("AEDT", 11*60*60)

	tests := []struct {
		value string
		want  time.Time
	}{
		{"2024-03-15T09:05", time.Date(2024, 3, 15, 9, 5, 0, 0, sydney)},
		{"2024-03-15T09:05:30", time.Date(2024, 3, 15, 9, 5, 30, 0, sydney)},
		{"2024-03-15 09:05", time.Date(2024, 3, 15, 9, 5, 0, 0, sydney)},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, sydney)},
		{"2024-03-14T22:05:00Z", time.Date(2024, 3, 15, 9, 5, 0, 0, sydney)},
		{"2024-03-15T09:05:00.250+11:00", time.Date(2024, 3, 15, 9, 5, 0, 250_000_000, sydney)},
	}

	for _, tc := range tests {
		got, err := ParseTimestamp(tc.value, sydney)
		require.NoError(t, err, tc.value)
		assert.True(t, got.Equal(tc.want), "%s: got %s want %s", tc.value, got, tc.want)
	}
}

func TestToHHMM(t *testing.T) {
	day := func(h, m int) time.Time { return time.Date(2024, 3, 15, h, m, 0, 0, time.UTC) }

	assert.Equal(t, 905, ToHHMM(day(9, 5)))
	assert.Equal(t, 2347, ToHHMM(day(23, 47)))
	assert.Equal(t, 0, ToHHMM(day(0, 0)))
	assert.Equal(t, 1200, ToHHMM(day(12, 0)))
	assert.Equal(t, 5, ToHHMM(day(0, 5)))
}

func TestToHHMM_UsesTimestampLocation(t *testing.T) {
	utc := time.Date(2024, 3, 14, 22, 5, 0, 0, time.UTC)
	local := utc.In(time.FixedZone("AEDT", 11*60*60))

	assert.Equal(t, 2205, ToHHMM(utc))
	assert.Equal(t, 905, ToHHMM(local))
}

func TestToMinutesSinceMidnight(t *testing.T) {
	got, err := ToMinutesSinceMidnight(TimeOfDay{})
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = ToMinutesSinceMidnight(TimeOfDay{Hours: 23, Minutes: 59})
	require.NoError(t, err)
	assert.Equal(t, 1439, got)

	got, err = ToMinutesSinceMidnight(TimeOfDay{Hours: 9, Minutes: 5})
	require.NoError(t, err)
	assert.Equal(t, 545, got)
}

func TestToMinutesSinceMidnight_OutOfRange(t *testing.T) {
	for _, tod := range []TimeOfDay{{Hours: 24}, {Hours: -1}, {Minutes: 60}, {Hours: 3, Minutes: -5}} {
		_, err := ToMinutesSinceMidnight(tod)
		assert.ErrorIs(t, err, ErrInvalidTimeOfDay, "%+v", tod)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hours: 9, Minutes: 5}, got)

	_, err = ParseTimeOfDay("24:00")
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)

	_, err = ParseTimeOfDay("noon")
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}
