package attendance

import (
	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/pkg/timeutil"
)

// Status is the per-day display/export status. It is derived, never stored.
type Status string

const (
	StatusPresent Status = "Present"
	StatusPartial Status = "Partial"
	StatusAbsent  Status = "Absent"
)

// DeriveStatus resolves a record to exactly one status. The priority order
// is fixed: an unclosed medical-leave day beats an unclosed emergency
// leave, which beats the presence rules.
func DeriveStatus(rec *models.AttendanceRecord) Status {
	if rec == nil {
		return StatusAbsent
	}

	switch {
	case rec.MedicalLeaveType != "" && rec.MedicalLeaveType != models.MedicalLeaveNone && rec.CheckOutTime == "":
		return StatusAbsent
	case rec.EmergencyLeaveTime != "" && rec.CheckOutTime == "":
		return StatusAbsent
	case rec.CheckInTime != "" && rec.CheckOutTime != "" && rec.FingerprintVerified && rec.GPSVerified:
		return StatusPresent
	case rec.CheckInTime != "":
		return StatusPartial
	default:
		return StatusAbsent
	}
}

// DisplayHours recomputes the total-hours cell at render time so report
// rows stay consistent with the checkout overrides even when the stored
// value predates them: an emergency-leave day that was never resumed shows
// the span up to the leave, and a closed paid-medical-leave day shows full
// shift credit.
func DisplayHours(rec *models.AttendanceRecord) string {
	if rec == nil {
		return timeutil.ZeroDuration
	}

	if rec.EmergencyLeaveTime != "" && rec.CheckOutTime == "" {
		return timeutil.Duration(rec.CheckInTime, rec.EmergencyLeaveTime)
	}
	if rec.MedicalLeaveType == models.MedicalLeavePaid && rec.CheckOutTime != "" {
		return timeutil.ShiftDuration(rec.AssignedShift)
	}
	if rec.TotalHours == "" {
		return timeutil.ZeroDuration
	}
	return rec.TotalHours
}
