package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clock(t *testing.T, hhmm string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		t.Fatalf("bad test clock %q: %v", hhmm, err)
	}
	return parsed
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "8h 00m", Duration("09:00 AM", "05:00 PM"))
	assert.Equal(t, "11h 25m", Duration("09:05 AM", "08:30 PM"))
	assert.Equal(t, "0h 45m", Duration("09:00 AM", "09:45 AM"))
	assert.Equal(t, "0h 00m", Duration("09:00 AM", "09:00 AM"))
}

func TestDurationMidnightWrap(t *testing.T) {
	assert.Equal(t, "2h 00m", Duration("11:00 PM", "01:00 AM"))
	assert.Equal(t, "8h 30m", Duration("10:00 PM", "06:30 AM"))
}

func TestDurationBlankInputsDefaultToZero(t *testing.T) {
	assert.Equal(t, ZeroDuration, Duration("", "05:00 PM"))
	assert.Equal(t, ZeroDuration, Duration("09:00 AM", ""))
	assert.Equal(t, ZeroDuration, Duration("", ""))
}

func TestDurationMalformedInputsReturnSentinel(t *testing.T) {
	assert.Equal(t, DurationError, Duration("nine o'clock", "05:00 PM"))
	assert.Equal(t, DurationError, Duration("09:00 AM", "17:00"))
}

func TestIsTimeReachedAt(t *testing.T) {
	assert.True(t, IsTimeReachedAt(clock(t, "09:00"), "09:00 AM"))
	assert.True(t, IsTimeReachedAt(clock(t, "09:01"), "09:00 AM"))
	assert.False(t, IsTimeReachedAt(clock(t, "08:59"), "09:00 AM"))
	assert.False(t, IsTimeReachedAt(clock(t, "23:58"), "11:59 PM"))
	assert.True(t, IsTimeReachedAt(clock(t, "23:59"), "11:59 PM"))
}

func TestIsTimeReachedUnsetTargetAlwaysOpen(t *testing.T) {
	assert.True(t, IsTimeReachedAt(clock(t, "00:00"), ""))
	assert.True(t, IsTimeReachedAt(clock(t, "00:00"), "N/A"))
	// An unparseable gate never locks anyone out.
	assert.True(t, IsTimeReachedAt(clock(t, "00:00"), "morning"))
}

func TestIsPastGracePeriodAt(t *testing.T) {
	assert.False(t, IsPastGracePeriodAt(clock(t, "09:10"), "09:00 AM", 15))
	assert.False(t, IsPastGracePeriodAt(clock(t, "09:15"), "09:00 AM", 15))
	assert.True(t, IsPastGracePeriodAt(clock(t, "09:16"), "09:00 AM", 15))

	// Unset target means "not late", not "gate reached".
	assert.False(t, IsPastGracePeriodAt(clock(t, "23:00"), "", 15))
	assert.False(t, IsPastGracePeriodAt(clock(t, "23:00"), "N/A", 15))
}

func TestOvertime(t *testing.T) {
	assert.Equal(t, "2h 00m", Overtime("09:00 AM", "06:00 PM", "09:00 AM", "08:00 PM"))
	assert.Equal(t, "2h 25m", Overtime("09:00 AM", "06:00 PM", "09:05 AM", "08:30 PM"))
}

func TestOvertimeNoneWhenWorkedWithinShift(t *testing.T) {
	assert.Equal(t, ZeroDuration, Overtime("09:00 AM", "06:00 PM", "09:00 AM", "06:00 PM"))
	assert.Equal(t, ZeroDuration, Overtime("09:00 AM", "06:00 PM", "10:00 AM", "04:00 PM"))
}

func TestOvertimeParseFailureYieldsZero(t *testing.T) {
	assert.Equal(t, ZeroDuration, Overtime("", "06:00 PM", "09:00 AM", "08:00 PM"))
	assert.Equal(t, ZeroDuration, Overtime("09:00 AM", "06:00 PM", "bad", "08:00 PM"))
}

func TestOvertimeNightShiftWrap(t *testing.T) {
	// 10 PM - 6 AM shift, worked 10 PM - 8 AM.
	assert.Equal(t, "2h 00m", Overtime("10:00 PM", "06:00 AM", "10:00 PM", "08:00 AM"))
}

func TestShiftDuration(t *testing.T) {
	assert.Equal(t, "9h 00m", ShiftDuration("09:00 AM - 06:00 PM"))
	assert.Equal(t, ZeroDuration, ShiftDuration("N/A"))
	assert.Equal(t, ZeroDuration, ShiftDuration(""))
	assert.Equal(t, ZeroDuration, ShiftDuration("09:00 AM to 06:00 PM"))
}

func TestDayOfWeek(t *testing.T) {
	assert.Equal(t, "Thursday", DayOfWeek("2026-01-22"))
	assert.Equal(t, "Unknown", DayOfWeek("22/01/2026"))
}

func TestFormatTimestampToDate(t *testing.T) {
	ts := time.Date(2026, 1, 22, 9, 30, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, time.UnixMilli(ts).Format(DateIDLayout), FormatTimestampToDate(ts))
}
