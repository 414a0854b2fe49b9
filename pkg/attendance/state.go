// Package attendance holds the attendance state machine: pure decision
// functions over an employee-day record, the employee profile and a set of
// already-resolved gate results. All I/O (biometric prompt, GPS fix,
// persistence) stays in the calling layer so these functions can be
// re-evaluated on every observed change.
package attendance

import (
	"time"

	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/pkg/timeutil"
)

// State of one employee-day, derived from the record's fields, never stored.
type State string

const (
	StateNotStarted     State = "not_started"
	StateReadyToCheckIn State = "ready_to_check_in"
	StateCheckedIn      State = "checked_in"
	StateCompleted      State = "completed"
)

// DayState bundles the derived state with the transit sub-state and the
// action eligibility the UI needs on every snapshot.
type DayState struct {
	State           State `json:"state"`
	TransitRequired bool  `json:"transit_required"`
	CanCheckIn      bool  `json:"can_check_in"`
	CanTransit      bool  `json:"can_transit"`
	CanCheckOut     bool  `json:"can_check_out"`
	CanTakeLeave    bool  `json:"can_take_leave"`
}

// Gates carries the results of the asynchronous gate operations, resolved
// by the caller before any decision function runs.
type Gates struct {
	FingerprintOK bool
	Lat           float64
	Lng           float64
	Now           time.Time
}

// DeriveState decides where an employee-day stands. A nil record means the
// day has not been touched; a record without a check-in exists only
// because of a leave or resume workflow.
//
// The check-in gate opens when a resume was requested (bypasses the time
// gate and any leave block), when traveling mode is on, or when the shift
// start time has been reached and no pending/approved medical leave blocks
// the day. A completed day re-enters ReadyToCheckIn only through a fresh
// resume request.
func DeriveState(record *models.AttendanceRecord, user *models.User, assigned *models.CompanyConfig) DayState {
	return DeriveStateAt(time.Now(), record, user, assigned)
}

// DeriveStateAt is DeriveState against an explicit clock.
func DeriveStateAt(now time.Time, record *models.AttendanceRecord, user *models.User, assigned *models.CompanyConfig) DayState {
	var ds DayState

	switch {
	case record == nil || record.CheckInTime == "":
		if checkInGateOpen(now, record, user) {
			ds.State = StateReadyToCheckIn
			ds.CanCheckIn = true
		} else {
			ds.State = StateNotStarted
		}

	case record.IsOpen():
		ds.State = StateCheckedIn
		ds.CanCheckOut = true
		ds.CanTakeLeave = true
		if assigned != nil && record.LastVerifiedLocationID != assigned.ID {
			ds.TransitRequired = true
			ds.CanTransit = true
		}

	default: // closed
		if record.ResumeRequested {
			ds.State = StateReadyToCheckIn
			ds.CanCheckIn = true
		} else {
			ds.State = StateCompleted
		}
	}

	return ds
}

func checkInGateOpen(now time.Time, record *models.AttendanceRecord, user *models.User) bool {
	if record != nil && record.ResumeRequested {
		return true
	}
	if user == nil {
		return false
	}
	if user.IsTraveling {
		return true
	}
	if user.MedicalLeaveBlocked() {
		return false
	}
	return timeutil.IsTimeReachedAt(now, user.ShiftStartTime)
}
