package report

import (
	"math"
	"strconv"
	"strings"

	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/pkg/attendance"
)

// CSVHeader is the fixed 14-column export contract.
const CSVHeader = "Date,Day,CheckIn,TransitRoute,CheckOut,AssignedShift,TotalHours,Overtime,Location,DistanceMeters,FingerprintVerified,GPSVerified,Status,Remarks"

// CSV renders a projected month as the 14-column report. Rows are built by
// hand rather than through encoding/csv: the output contract quotes
// exactly the transit and location free-text columns and nothing else,
// while encoding/csv decides quoting per cell.
func CSV(records []models.AttendanceRecord) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')

	for i := range records {
		rec := &records[i]

		b.WriteString(rec.Date)
		b.WriteByte(',')
		b.WriteString(orDefault(rec.DayOfWeek, "--"))
		b.WriteByte(',')
		b.WriteString(orDefault(rec.CheckInTime, "--"))
		b.WriteByte(',')
		b.WriteString(`"` + TransitSummary(rec) + `",`)
		b.WriteString(orDefault(rec.CheckOutTime, "--"))
		b.WriteByte(',')
		b.WriteString(orDefault(rec.AssignedShift, "--"))
		b.WriteByte(',')
		b.WriteString(attendance.DisplayHours(rec))
		b.WriteByte(',')
		b.WriteString(orDefault(rec.OvertimeHours, "--"))
		b.WriteByte(',')
		b.WriteString(`"` + orDefault(rec.LocationName, "N/A") + `",`)
		b.WriteString(distanceCell(rec))
		b.WriteByte(',')
		b.WriteString(yesNo(rec.FingerprintVerified))
		b.WriteByte(',')
		b.WriteString(yesNo(rec.GPSVerified))
		b.WriteByte(',')
		b.WriteString(string(attendance.DeriveStatus(rec)))
		b.WriteByte(',')
		b.WriteString(rec.Remarks)
		b.WriteByte('\n')
	}

	return b.String()
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func distanceCell(rec *models.AttendanceRecord) string {
	if rec.CheckInTime == "" {
		return "--"
	}
	return strconv.Itoa(int(math.Round(rec.DistanceMeters)))
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}
