// Package timeutil does duration, overtime and time-gate arithmetic on
// 12-hour time-of-day strings (e.g. "09:30 AM"), the format attendance
// records persist and display.
//
// Every comparison here is a bare time-of-day comparison with no date
// anchor. Callers must treat each duration and gate check as bounded to a
// single calendar day; behavior across midnight boundaries is undefined
// except for the explicit wrap-around rule in Duration.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateIDLayout keys attendance documents (e.g. "2026-01-22").
	DateIDLayout = "2006-01-02"
	// ClockLayout is the display and storage format for times of day.
	ClockLayout = "03:04 PM"
)

// DurationError is returned by Duration when either input is present but
// unparseable. Blank inputs yield the zero default instead; callers that
// need to distinguish "no data" from "zero" must check for blanks first.
const DurationError = "Error"

// ZeroDuration is the neutral default for missing or failed computations.
const ZeroDuration = "0h 00m"

// CurrentDateID returns today's document key (e.g. "2026-01-22").
func CurrentDateID() string {
	return time.Now().Format(DateIDLayout)
}

// CurrentTime returns the current time of day for display (e.g. "09:30 AM").
func CurrentTime() string {
	return time.Now().Format(ClockLayout)
}

// CurrentTimestamp returns the creation instant in unix milliseconds,
// used for cross-day ordering.
func CurrentTimestamp() int64 {
	return time.Now().UnixMilli()
}

// FormatTimestampToDate converts a unix-millisecond timestamp to a dateId.
func FormatTimestampToDate(ts int64) string {
	return time.UnixMilli(ts).Format(DateIDLayout)
}

// DayOfWeek returns the weekday name ("Monday") for a dateId, or "Unknown"
// when the date does not parse.
func DayOfWeek(dateID string) string {
	d, err := time.Parse(DateIDLayout, dateID)
	if err != nil {
		return "Unknown"
	}
	return d.Weekday().String()
}

func parseClock(s string) (time.Time, error) {
	return time.Parse(ClockLayout, strings.TrimSpace(s))
}

// minutesBetween is the wrap-aware difference in minutes between two times
// of day. When end precedes start numerically the span is assumed to cross
// midnight and a day is added.
func minutesBetween(start, end time.Time) int {
	diff := int(end.Sub(start).Minutes())
	if diff < 0 {
		diff += 24 * 60
	}
	return diff
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// Duration computes the difference between two times of day rendered as
// "<h>h <mm>m". Blank inputs return "0h 00m" as a zero-duration default;
// present but malformed inputs return the DurationError sentinel.
func Duration(start, end string) string {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return ZeroDuration
	}

	in, err := parseClock(start)
	if err != nil {
		return DurationError
	}
	out, err := parseClock(end)
	if err != nil {
		return DurationError
	}

	return formatMinutes(minutesBetween(in, out))
}

// IsTimeReached reports whether the current wall-clock time of day has
// reached the target. An unset target ("" or "N/A") means no gate is
// configured, so the gate is always open.
func IsTimeReached(target string) bool {
	return IsTimeReachedAt(time.Now(), target)
}

// IsTimeReachedAt is IsTimeReached against an explicit clock.
func IsTimeReachedAt(now time.Time, target string) bool {
	if isUnsetTarget(target) {
		return true
	}

	goal, err := parseClock(target)
	if err != nil {
		return true
	}

	return clockMinutes(now) >= goal.Hour()*60+goal.Minute()
}

// IsPastGracePeriod reports whether the current time of day exceeds the
// target by more than graceMinutes. Unlike IsTimeReached, an unset or
// malformed target yields false: no gate means nothing to be late for.
func IsPastGracePeriod(target string, graceMinutes int) bool {
	return IsPastGracePeriodAt(time.Now(), target, graceMinutes)
}

// IsPastGracePeriodAt is IsPastGracePeriod against an explicit clock.
func IsPastGracePeriodAt(now time.Time, target string, graceMinutes int) bool {
	if isUnsetTarget(target) {
		return false
	}

	goal, err := parseClock(target)
	if err != nil {
		return false
	}

	return clockMinutes(now) > goal.Hour()*60+goal.Minute()+graceMinutes
}

// Overtime compares the assigned shift span against the actually worked
// span, both wrap-aware, and returns the positive delta when worked time
// exceeds the shift, else "0h 00m". Any parse failure yields "0h 00m".
func Overtime(shiftStart, shiftEnd, actualIn, actualOut string) string {
	ss, err := parseClock(shiftStart)
	if err != nil {
		return ZeroDuration
	}
	se, err := parseClock(shiftEnd)
	if err != nil {
		return ZeroDuration
	}
	in, err := parseClock(actualIn)
	if err != nil {
		return ZeroDuration
	}
	out, err := parseClock(actualOut)
	if err != nil {
		return ZeroDuration
	}

	assigned := minutesBetween(ss, se)
	worked := minutesBetween(in, out)

	if worked > assigned {
		return formatMinutes(worked - assigned)
	}
	return ZeroDuration
}

// ShiftDuration computes the full span of an assigned-shift snapshot such
// as "09:00 AM - 06:00 PM". Malformed snapshots (including "N/A") yield
// "0h 00m".
func ShiftDuration(shift string) string {
	parts := strings.SplitN(shift, "-", 2)
	if len(parts) != 2 {
		return ZeroDuration
	}

	d := Duration(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	if d == DurationError {
		return ZeroDuration
	}
	return d
}

func isUnsetTarget(target string) bool {
	t := strings.TrimSpace(target)
	return t == "" || t == "N/A"
}

func clockMinutes(now time.Time) int {
	return now.Hour()*60 + now.Minute()
}
