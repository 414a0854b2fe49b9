package attendance

import (
	"fmt"
	"time"

	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/pkg/geo"
	"InOut-Attendance-Backend/pkg/timeutil"
)

// DenyCode classifies why an action was refused.
type DenyCode string

const (
	// DenyBiometric and DenyGeofence are gate failures: user-visible,
	// retryable by re-invoking the action, no state change.
	DenyBiometric DenyCode = "biometric_denied"
	DenyGeofence  DenyCode = "geofence_denied"
	// DenyState is a precondition violation (action in the wrong state).
	DenyState DenyCode = "wrong_state"
	// DenyGateClosed means the check-in time gate has not opened yet or a
	// leave block is in effect.
	DenyGateClosed DenyCode = "gate_closed"
)

// Decision is the outcome of evaluating a gated action. Every denial is
// terminal for that attempt; attempts are independent and never retried
// automatically.
type Decision struct {
	Allowed  bool
	Code     DenyCode
	Message  string
	Distance float64
	Remote   bool
}

func deny(code DenyCode, message string) Decision {
	return Decision{Code: code, Message: message}
}

// EvaluateCheckIn decides whether a check-in attempt may proceed.
// Traveling mode bypasses the geofence for this action only; a resume
// request bypasses the time gate and any leave block.
func EvaluateCheckIn(rec *models.AttendanceRecord, user *models.User, loc *models.CompanyConfig, g Gates) Decision {
	if !g.FingerprintOK {
		return deny(DenyBiometric, "Fingerprint not recognized.")
	}

	ds := DeriveStateAt(g.Now, rec, user, loc)
	switch ds.State {
	case StateCheckedIn:
		return deny(DenyState, "Already checked in for today.")
	case StateCompleted:
		return deny(DenyState, "Shift already completed for today.")
	case StateNotStarted:
		if user.MedicalLeaveBlocked() {
			return deny(DenyGateClosed, "Check-in blocked by a pending or approved medical leave.")
		}
		return deny(DenyGateClosed, fmt.Sprintf("Shift has not started yet (%s).", user.ShiftStartTime))
	}

	if user.IsTraveling {
		// Remote start: distance does not apply.
		return Decision{Allowed: true, Remote: true}
	}

	dist := geo.Distance(g.Lat, g.Lng, loc.Latitude, loc.Longitude)
	if dist > loc.Radius {
		return deny(DenyGeofence, fmt.Sprintf("Denied: You are not at %s.", loc.Name))
	}
	return Decision{Allowed: true, Distance: dist}
}

// EvaluateTransit decides a transit re-verification: the record must be an
// open day and the device must be within radius of the currently assigned
// location. There is no traveling bypass for transit.
func EvaluateTransit(rec *models.AttendanceRecord, loc *models.CompanyConfig, g Gates) Decision {
	if !g.FingerprintOK {
		return deny(DenyBiometric, "Fingerprint not recognized.")
	}
	if rec == nil || !rec.IsOpen() {
		return deny(DenyState, "No open check-in to verify transit for.")
	}

	dist := geo.Distance(g.Lat, g.Lng, loc.Latitude, loc.Longitude)
	if dist > loc.Radius {
		return deny(DenyGeofence, fmt.Sprintf("Denied: You are not at %s.", loc.Name))
	}
	return Decision{Allowed: true, Distance: dist}
}

// EvaluateCheckOut mirrors EvaluateTransit: open day, within radius.
func EvaluateCheckOut(rec *models.AttendanceRecord, loc *models.CompanyConfig, g Gates) Decision {
	if !g.FingerprintOK {
		return deny(DenyBiometric, "Fingerprint not recognized.")
	}
	if rec == nil || !rec.IsOpen() {
		return deny(DenyState, "No open check-in to check out from.")
	}

	dist := geo.Distance(g.Lat, g.Lng, loc.Latitude, loc.Longitude)
	if dist > loc.Radius {
		return deny(DenyGeofence, fmt.Sprintf("Denied: You are not at %s.", loc.Name))
	}
	return Decision{Allowed: true, Distance: dist}
}

// BuildCheckInRecord assembles the full document a successful check-in
// writes. For a remote (traveling) start the movement log opens with
// "Started at <address>" and the distance does not apply; otherwise the
// log opens with the office name and the verified distance is recorded.
func BuildCheckInRecord(user *models.User, loc *models.CompanyConfig, g Gates, d Decision, address string, prior *models.AttendanceRecord) *models.AttendanceRecord {
	dateID := g.Now.Format(timeutil.DateIDLayout)

	rec := &models.AttendanceRecord{
		RecordID:            models.RecordKey(user.EmployeeID, dateID),
		EmployeeID:          user.EmployeeID,
		EmployeeName:        user.Name,
		Date:                dateID,
		CheckInTime:         g.Now.Format(timeutil.ClockLayout),
		CheckInLat:          g.Lat,
		CheckInLng:          g.Lng,
		FingerprintVerified: true,
		GPSVerified:         true,
		AssignedShift:       user.AssignedShift(),
		LocationName:        loc.Name,
		Timestamp:           g.Now.UnixMilli(),
	}

	if d.Remote {
		if address == "" {
			address = "Remote Location"
		}
		rec.StartLocationName = address
		rec.MovementLog = []string{"Started at " + address}
	} else {
		rec.DistanceMeters = d.Distance
		rec.MovementLog = []string{loc.Name}
	}
	rec.LastVerifiedLocationID = loc.ID

	// A resume cycle keeps the flag and the leave annotations from the
	// earlier part of the day so checkout can apply its overrides.
	if prior != nil {
		rec.ResumeRequested = prior.ResumeRequested
		rec.EmergencyLeaveTime = prior.EmergencyLeaveTime
		rec.EmergencyLeaveLocation = prior.EmergencyLeaveLocation
		rec.Remarks = prior.Remarks
	}
	if user.MedicalLeaveStatus == models.LeaveStatusApproved {
		rec.MedicalLeaveType = user.MedicalLeaveType
	} else {
		rec.MedicalLeaveType = models.MedicalLeaveNone
	}

	return rec
}

// TransitPatch is the partial update a verified transit applies.
type TransitPatch struct {
	DistanceMeters         float64
	LocationName           string
	LastVerifiedLocationID string
	MovementEntry          string
}

// BuildTransitPatch accumulates distance-from-target and re-points the
// record at the newly verified location.
func BuildTransitPatch(rec *models.AttendanceRecord, loc *models.CompanyConfig, d Decision) TransitPatch {
	return TransitPatch{
		DistanceMeters:         rec.DistanceMeters + d.Distance,
		LocationName:           loc.Name,
		LastVerifiedLocationID: loc.ID,
		MovementEntry:          loc.Name,
	}
}

// CheckOutPatch is the partial update a successful check-out applies.
// Remarks is only written when non-empty.
type CheckOutPatch struct {
	CheckOutTime    string
	CheckOutLat     float64
	CheckOutLng     float64
	TotalHours      string
	OvertimeHours   string
	Remarks         string
	ClearResumeFlag bool
}

// BuildCheckOutPatch computes the terminal fields for the day. A paid
// medical leave credits the full assigned-shift duration instead of the
// actual worked span; a resume cycle keeps the worked hours but records
// the worked-vs-assigned discrepancy as a remark. The resume flag is
// consumed here so a completed day only re-opens through a fresh request.
func BuildCheckOutPatch(rec *models.AttendanceRecord, user *models.User, g Gates) CheckOutPatch {
	outTime := g.Now.Format(timeutil.ClockLayout)

	patch := CheckOutPatch{
		CheckOutTime:  outTime,
		CheckOutLat:   g.Lat,
		CheckOutLng:   g.Lng,
		TotalHours:    timeutil.Duration(rec.CheckInTime, outTime),
		OvertimeHours: timeutil.Overtime(user.ShiftStartTime, user.ShiftEndTime, rec.CheckInTime, outTime),
	}

	switch {
	case rec.MedicalLeaveType == models.MedicalLeavePaid:
		// Paid leave plus resumed work earns full shift credit.
		patch.TotalHours = timeutil.ShiftDuration(rec.AssignedShift)
	case rec.ResumeRequested:
		worked := timeutil.Duration(rec.CheckInTime, outTime)
		assigned := timeutil.ShiftDuration(rec.AssignedShift)
		patch.Remarks = appendRemark(rec.Remarks,
			fmt.Sprintf("Resumed day: worked %s of assigned %s shift", worked, assigned))
	}
	if rec.ResumeRequested {
		patch.ClearResumeFlag = true
	}

	return patch
}

// EmergencyLeavePatch annotates the record without closing the day; the
// day stays open and resolves to Absent unless later resumed.
type EmergencyLeavePatch struct {
	EmergencyLeaveTime     string
	EmergencyLeaveLocation string
	Remarks                string
}

// BuildEmergencyLeavePatch records where and when the employee left.
// There is no geofence for emergency leave; it is granted from wherever
// the employee is.
func BuildEmergencyLeavePatch(rec *models.AttendanceRecord, now time.Time) EmergencyLeavePatch {
	leaveTime := now.Format(timeutil.ClockLayout)
	return EmergencyLeavePatch{
		EmergencyLeaveTime:     leaveTime,
		EmergencyLeaveLocation: rec.LocationName,
		Remarks: appendRemark(rec.Remarks,
			fmt.Sprintf("Emergency leave at %s took at %s", rec.LocationName, leaveTime)),
	}
}

// BuildResumeRecord creates the bare record a resume request writes when
// the employee has no record for the day yet (e.g. a medical leave day
// they now want to work).
func BuildResumeRecord(user *models.User, now time.Time) *models.AttendanceRecord {
	dateID := now.Format(timeutil.DateIDLayout)
	return &models.AttendanceRecord{
		RecordID:        models.RecordKey(user.EmployeeID, dateID),
		EmployeeID:      user.EmployeeID,
		EmployeeName:    user.Name,
		Date:            dateID,
		ResumeRequested: true,
		Timestamp:       now.UnixMilli(),
	}
}

func appendRemark(existing, remark string) string {
	if existing == "" {
		return remark
	}
	return existing + "; " + remark
}
