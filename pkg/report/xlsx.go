package report

import (
	"fmt"
	"math"
	"strings"

	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/pkg/attendance"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Attendance"

// XLSX renders the same 14-column projection as a spreadsheet for admins
// who prefer Excel over raw CSV.
func XLSX(records []models.AttendanceRecord, title string) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := strings.Split(CSVHeader, ",")
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(xlsxSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i := range records {
		rec := &records[i]
		row := []interface{}{
			rec.Date,
			orDefault(rec.DayOfWeek, "--"),
			orDefault(rec.CheckInTime, "--"),
			TransitSummary(rec),
			orDefault(rec.CheckOutTime, "--"),
			orDefault(rec.AssignedShift, "--"),
			attendance.DisplayHours(rec),
			orDefault(rec.OvertimeHours, "--"),
			orDefault(rec.LocationName, "N/A"),
			xlsxDistance(rec),
			yesNo(rec.FingerprintVerified),
			yesNo(rec.GPSVerified),
			string(attendance.DeriveStatus(rec)),
			rec.Remarks,
		}

		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(xlsxSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if title != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: title}); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func xlsxDistance(rec *models.AttendanceRecord) interface{} {
	if rec.CheckInTime == "" {
		return "--"
	}
	return int(math.Round(rec.DistanceMeters))
}
