package report

import (
	"strings"
	"testing"
	"time"

	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/pkg/attendance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sparseMonth() map[string]models.AttendanceRecord {
	return map[string]models.AttendanceRecord{
		"2026-04-03": {
			RecordID: "EMP001_2026-04-03", EmployeeID: "EMP001", Date: "2026-04-03",
			CheckInTime: "09:00 AM", CheckOutTime: "06:00 PM",
			TotalHours: "9h 00m", OvertimeHours: "0h 00m",
			LocationName: "Headquarters", DistanceMeters: 42.4,
			MovementLog:         []string{"Headquarters"},
			AssignedShift:       "09:00 AM - 06:00 PM",
			FingerprintVerified: true, GPSVerified: true,
		},
		"2026-04-10": {
			RecordID: "EMP001_2026-04-10", EmployeeID: "EMP001", Date: "2026-04-10",
			CheckInTime:  "09:15 AM",
			LocationName: "Headquarters", DistanceMeters: 12.0,
			MovementLog:         []string{"Headquarters", "Branch A"},
			FingerprintVerified: true, GPSVerified: true,
		},
		"2026-04-21": {
			RecordID: "EMP001_2026-04-21", EmployeeID: "EMP001", Date: "2026-04-21",
			CheckInTime: "08:55 AM", StartLocationName: "Main St Jakarta",
			MovementLog:         []string{"Started at Main St Jakarta", "Headquarters"},
			LocationName:        "Headquarters",
			FingerprintVerified: true, GPSVerified: true,
		},
	}
}

func TestMonthProjectionFillsEveryDay(t *testing.T) {
	projected := MonthProjection(sparseMonth(), 2026, time.April)
	require.Len(t, projected, 30)

	// Ascending by date, day 1 through 30.
	assert.Equal(t, "2026-04-01", projected[0].Date)
	assert.Equal(t, "2026-04-30", projected[29].Date)
	for i := 1; i < len(projected); i++ {
		assert.Less(t, projected[i-1].Date, projected[i].Date)
	}

	absent := 0
	for i := range projected {
		if attendance.DeriveStatus(&projected[i]) == attendance.StatusAbsent {
			absent++
		}
	}
	assert.Equal(t, 27, absent)
}

func TestMonthProjectionOverwritesDayOfWeek(t *testing.T) {
	records := sparseMonth()
	rec := records["2026-04-03"]
	rec.DayOfWeek = "Sunday" // stale stored value
	records["2026-04-03"] = rec

	projected := MonthProjection(records, 2026, time.April)
	assert.Equal(t, "Friday", projected[2].DayOfWeek)
	// Synthesized placeholders get a weekday too.
	assert.Equal(t, "Wednesday", projected[0].DayOfWeek)
}

func TestMonthProjectionIsIdempotent(t *testing.T) {
	records := sparseMonth()
	first := MonthProjection(records, 2026, time.April)
	second := MonthProjection(records, 2026, time.April)
	assert.Equal(t, first, second)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2026, time.January))
	assert.Equal(t, 28, DaysInMonth(2026, time.February))
	assert.Equal(t, 29, DaysInMonth(2028, time.February))
	assert.Equal(t, 30, DaysInMonth(2026, time.April))
}

func TestTransitSummary(t *testing.T) {
	rec := &models.AttendanceRecord{MovementLog: []string{"Headquarters", "Branch A"}}
	assert.Equal(t, "Headquarters → Branch A", TransitSummary(rec))

	remote := &models.AttendanceRecord{MovementLog: []string{"Started at Main St", "Headquarters"}}
	assert.Equal(t, "Started at Main St → Headquarters", TransitSummary(remote))

	assert.Equal(t, "--", TransitSummary(&models.AttendanceRecord{}))
}

func TestCSVHeaderContract(t *testing.T) {
	out := CSV(nil)
	assert.Equal(t, CSVHeader+"\n", out)
	assert.Equal(t,
		"Date,Day,CheckIn,TransitRoute,CheckOut,AssignedShift,TotalHours,Overtime,Location,DistanceMeters,FingerprintVerified,GPSVerified,Status,Remarks",
		CSVHeader)
}

func TestCSVRows(t *testing.T) {
	projected := MonthProjection(sparseMonth(), 2026, time.April)
	out := CSV(projected)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 31) // header + 30 days

	// A full present day.
	assert.Equal(t,
		`2026-04-03,Friday,09:00 AM,"Headquarters",06:00 PM,09:00 AM - 06:00 PM,9h 00m,0h 00m,"Headquarters",42,YES,YES,Present,`,
		lines[3])

	// A synthesized absent day: placeholders all the way through.
	assert.Equal(t,
		`2026-04-01,Wednesday,--,"--",--,--,0h 00m,--,"N/A",--,NO,NO,Absent,`,
		lines[1])

	// An open day is Partial and keeps its distance.
	assert.Contains(t, lines[10], "Partial")
	assert.Contains(t, lines[10], `"Headquarters → Branch A"`)
}

func TestCSVQuotesOnlyFreeTextColumns(t *testing.T) {
	projected := MonthProjection(sparseMonth(), 2026, time.April)
	out := CSV(projected)
	line := strings.Split(out, "\n")[3]

	fields := strings.Split(line, ",")
	// Only transit and location carry free text, so only those two columns
	// are quoted; everything else stays bare.
	assert.True(t, strings.HasPrefix(fields[3], `"`))
	assert.False(t, strings.HasPrefix(fields[0], `"`))
	assert.False(t, strings.HasPrefix(fields[2], `"`))
}

func TestMonthViewDerivesDisplayFields(t *testing.T) {
	records := sparseMonth()
	rec := records["2026-04-10"]
	rec.EmergencyLeaveTime = "01:00 PM"
	records["2026-04-10"] = rec

	views := MonthView(records, 2026, time.April)
	require.Len(t, views, 30)

	day10 := views[9]
	assert.Equal(t, attendance.StatusAbsent, day10.Status)
	// Display hours stop at the emergency leave, not at end of day.
	assert.Equal(t, "3h 45m", day10.DisplayHours)
	assert.Equal(t, "Headquarters → Branch A", day10.TransitRoute)
}

func TestXLSXMirrorsProjection(t *testing.T) {
	projected := MonthProjection(sparseMonth(), 2026, time.April)
	f, err := XLSX(projected, "EMP001 April 2026")
	require.NoError(t, err)

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.Len(t, rows, 31)

	assert.Equal(t, strings.Split(CSVHeader, ","), rows[0])
	assert.Equal(t, "2026-04-03", rows[3][0])
	assert.Equal(t, "Present", rows[3][12])
}
