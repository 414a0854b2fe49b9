// Package report expands sparse attendance storage into uniform month
// views and renders them for display and export.
package report

import (
	"fmt"
	"strings"
	"time"

	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/pkg/attendance"
	"InOut-Attendance-Backend/pkg/timeutil"
)

// DaysInMonth returns the day count of a calendar month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthProjection expands the sparse per-date record map into exactly one
// entry per calendar day, ascending. Days without a record synthesize a
// placeholder carrying only date and weekday, which resolves to Absent.
// The projection is a pure function of its inputs: re-running it over the
// same map yields the same sequence.
func MonthProjection(records map[string]models.AttendanceRecord, year int, month time.Month) []models.AttendanceRecord {
	days := DaysInMonth(year, month)
	out := make([]models.AttendanceRecord, 0, days)

	for day := 1; day <= days; day++ {
		dateID := fmt.Sprintf("%04d-%02d-%02d", year, month, day)

		rec, ok := records[dateID]
		if !ok {
			rec = models.AttendanceRecord{Date: dateID}
		}
		// The stored weekday is never authoritative.
		rec.DayOfWeek = timeutil.DayOfWeek(dateID)

		out = append(out, rec)
	}

	return out
}

// TransitSummary renders the movement trail as an arrow-joined chain. The
// first entry already carries the "Started at <address>" prefix for
// remote starts.
func TransitSummary(rec *models.AttendanceRecord) string {
	if len(rec.MovementLog) == 0 {
		return "--"
	}
	return strings.Join(rec.MovementLog, " → ")
}

// DayView is one projected day enriched with the derived fields the
// frontend table shows.
type DayView struct {
	models.AttendanceRecord
	Status       attendance.Status `json:"status"`
	DisplayHours string            `json:"display_hours"`
	TransitRoute string            `json:"transit_route"`
}

// MonthView projects a month and derives status, display hours and the
// transit route per day.
func MonthView(records map[string]models.AttendanceRecord, year int, month time.Month) []DayView {
	projected := MonthProjection(records, year, month)
	views := make([]DayView, 0, len(projected))

	for _, rec := range projected {
		rec := rec
		views = append(views, DayView{
			AttendanceRecord: rec,
			Status:           attendance.DeriveStatus(&rec),
			DisplayHours:     attendance.DisplayHours(&rec),
			TransitRoute:     TransitSummary(&rec),
		})
	}

	return views
}
