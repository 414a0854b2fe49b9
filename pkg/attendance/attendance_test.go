package attendance

import (
	"strings"
	"testing"
	"time"

	"InOut-Attendance-Backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var office = &models.CompanyConfig{
	ID:        "loc-hq",
	Name:      "Headquarters",
	Latitude:  -6.2088,
	Longitude: 106.8456,
	Radius:    100,
}

func employee() *models.User {
	return &models.User{
		UID:                  "uid-1",
		Name:                 "Josy Vine",
		EmployeeID:           "EMP001",
		Role:                 "employee",
		Approved:             true,
		AssignedLocationID:   office.ID,
		ShiftStartTime:       "09:00 AM",
		ShiftEndTime:         "06:00 PM",
		EmergencyLeaveStatus: models.LeaveStatusNone,
		MedicalLeaveStatus:   models.LeaveStatusNone,
		MedicalLeaveType:     models.MedicalLeaveNone,
	}
}

func at(t *testing.T, hhmm string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", "2026-01-22 "+hhmm)
	require.NoError(t, err)
	return parsed
}

func atOffice(now time.Time) Gates {
	return Gates{FingerprintOK: true, Lat: office.Latitude, Lng: office.Longitude, Now: now}
}

func farAway(now time.Time) Gates {
	return Gates{FingerprintOK: true, Lat: office.Latitude + 0.5, Lng: office.Longitude, Now: now}
}

func TestDeriveStateBeforeShiftStart(t *testing.T) {
	ds := DeriveStateAt(at(t, "08:30"), nil, employee(), office)
	assert.Equal(t, StateNotStarted, ds.State)
	assert.False(t, ds.CanCheckIn)
}

func TestDeriveStateAfterShiftStart(t *testing.T) {
	ds := DeriveStateAt(at(t, "09:00"), nil, employee(), office)
	assert.Equal(t, StateReadyToCheckIn, ds.State)
	assert.True(t, ds.CanCheckIn)
}

func TestDeriveStateTravelingBypassesTimeGate(t *testing.T) {
	u := employee()
	u.IsTraveling = true
	ds := DeriveStateAt(at(t, "06:00"), nil, u, office)
	assert.Equal(t, StateReadyToCheckIn, ds.State)
}

func TestDeriveStateMedicalLeaveBlocks(t *testing.T) {
	u := employee()
	u.MedicalLeaveStatus = models.LeaveStatusApproved
	ds := DeriveStateAt(at(t, "10:00"), nil, u, office)
	assert.Equal(t, StateNotStarted, ds.State)
}

func TestDeriveStateResumeBypassesLeaveBlock(t *testing.T) {
	u := employee()
	u.MedicalLeaveStatus = models.LeaveStatusApproved
	rec := BuildResumeRecord(u, at(t, "07:00"))
	ds := DeriveStateAt(at(t, "07:30"), rec, u, office)
	assert.Equal(t, StateReadyToCheckIn, ds.State)
}

func TestDeriveStateTransitRequiredAfterReassignment(t *testing.T) {
	u := employee()
	dec := EvaluateCheckIn(nil, u, office, atOffice(at(t, "09:05")))
	require.True(t, dec.Allowed)
	rec := BuildCheckInRecord(u, office, atOffice(at(t, "09:05")), dec, "", nil)

	branch := &models.CompanyConfig{ID: "loc-branch", Name: "Branch A", Latitude: -6.25, Longitude: 106.9, Radius: 100}
	ds := DeriveStateAt(at(t, "11:00"), rec, u, branch)
	assert.Equal(t, StateCheckedIn, ds.State)
	assert.True(t, ds.TransitRequired)
	assert.True(t, ds.CanTransit)

	// Still verified at the assigned office: no transit needed.
	ds = DeriveStateAt(at(t, "11:00"), rec, u, office)
	assert.False(t, ds.TransitRequired)
	assert.False(t, ds.CanTransit)
}

func TestCheckInDeniedByBiometric(t *testing.T) {
	g := atOffice(at(t, "09:05"))
	g.FingerprintOK = false
	dec := EvaluateCheckIn(nil, employee(), office, g)
	assert.False(t, dec.Allowed)
	assert.Equal(t, DenyBiometric, dec.Code)
}

func TestCheckInDeniedOutsideRadius(t *testing.T) {
	dec := EvaluateCheckIn(nil, employee(), office, farAway(at(t, "09:05")))
	assert.False(t, dec.Allowed)
	assert.Equal(t, DenyGeofence, dec.Code)
	assert.Contains(t, dec.Message, office.Name)
}

func TestCheckInTravelingBypassesGeofence(t *testing.T) {
	u := employee()
	u.IsTraveling = true
	dec := EvaluateCheckIn(nil, u, office, farAway(at(t, "09:05")))
	require.True(t, dec.Allowed)
	assert.True(t, dec.Remote)

	rec := BuildCheckInRecord(u, office, farAway(at(t, "09:05")), dec, "Main St Jakarta", nil)
	assert.Equal(t, 0.0, rec.DistanceMeters)
	assert.Equal(t, "Main St Jakarta", rec.StartLocationName)
	require.NotEmpty(t, rec.MovementLog)
	assert.True(t, strings.HasPrefix(rec.MovementLog[0], "Started at "))
	// Still assigned to the final destination.
	assert.Equal(t, office.Name, rec.LocationName)
}

func TestCheckInRemoteStartFallsBackToGenericLabel(t *testing.T) {
	u := employee()
	u.IsTraveling = true
	dec := EvaluateCheckIn(nil, u, office, farAway(at(t, "09:05")))
	require.True(t, dec.Allowed)

	rec := BuildCheckInRecord(u, office, farAway(at(t, "09:05")), dec, "", nil)
	assert.Equal(t, "Started at Remote Location", rec.MovementLog[0])
}

func TestCheckInRejectedWhileCheckedIn(t *testing.T) {
	u := employee()
	dec := EvaluateCheckIn(nil, u, office, atOffice(at(t, "09:05")))
	require.True(t, dec.Allowed)
	rec := BuildCheckInRecord(u, office, atOffice(at(t, "09:05")), dec, "", nil)

	again := EvaluateCheckIn(rec, u, office, atOffice(at(t, "10:00")))
	assert.False(t, again.Allowed)
	assert.Equal(t, DenyState, again.Code)
}

func TestCheckInBeforeGateOpens(t *testing.T) {
	dec := EvaluateCheckIn(nil, employee(), office, atOffice(at(t, "08:00")))
	assert.False(t, dec.Allowed)
	assert.Equal(t, DenyGateClosed, dec.Code)
}

func TestTransitAccumulatesDistanceAndMovement(t *testing.T) {
	u := employee()
	dec := EvaluateCheckIn(nil, u, office, atOffice(at(t, "09:05")))
	require.True(t, dec.Allowed)
	rec := BuildCheckInRecord(u, office, atOffice(at(t, "09:05")), dec, "", nil)
	rec.DistanceMeters = 40

	branch := &models.CompanyConfig{ID: "loc-branch", Name: "Branch A", Latitude: office.Latitude, Longitude: office.Longitude, Radius: 100}
	tDec := EvaluateTransit(rec, branch, atOffice(at(t, "12:00")))
	require.True(t, tDec.Allowed)

	patch := BuildTransitPatch(rec, branch, tDec)
	assert.Equal(t, rec.DistanceMeters+tDec.Distance, patch.DistanceMeters)
	assert.Equal(t, "Branch A", patch.LocationName)
	assert.Equal(t, "loc-branch", patch.LastVerifiedLocationID)
	assert.Equal(t, "Branch A", patch.MovementEntry)
}

func TestTransitWithoutOpenRecordIsRejected(t *testing.T) {
	dec := EvaluateTransit(nil, office, atOffice(at(t, "12:00")))
	assert.False(t, dec.Allowed)
	assert.Equal(t, DenyState, dec.Code)
}

func TestCheckOutComputesHoursAndOvertime(t *testing.T) {
	u := employee()
	dec := EvaluateCheckIn(nil, u, office, atOffice(at(t, "09:05")))
	require.True(t, dec.Allowed)
	rec := BuildCheckInRecord(u, office, atOffice(at(t, "09:05")), dec, "", nil)
	assert.Equal(t, "09:00 AM - 06:00 PM", rec.AssignedShift)

	outDec := EvaluateCheckOut(rec, office, atOffice(at(t, "20:30")))
	require.True(t, outDec.Allowed)
	patch := BuildCheckOutPatch(rec, u, atOffice(at(t, "20:30")))

	assert.Equal(t, "08:30 PM", patch.CheckOutTime)
	assert.Equal(t, "11h 25m", patch.TotalHours)
	// Worked 11h25m against a 9h shift: the late 09:05 start counts.
	assert.Equal(t, "2h 25m", patch.OvertimeHours)
	assert.Empty(t, patch.Remarks)

	rec.CheckOutTime = patch.CheckOutTime
	rec.TotalHours = patch.TotalHours
	rec.OvertimeHours = patch.OvertimeHours
	assert.Equal(t, StatusPresent, DeriveStatus(rec))
}

func TestCheckOutPaidMedicalLeaveEarnsFullShiftCredit(t *testing.T) {
	u := employee()
	u.MedicalLeaveStatus = models.LeaveStatusApproved
	u.MedicalLeaveType = models.MedicalLeavePaid

	resume := BuildResumeRecord(u, at(t, "13:00"))
	dec := EvaluateCheckIn(resume, u, office, atOffice(at(t, "14:00")))
	require.True(t, dec.Allowed)
	rec := BuildCheckInRecord(u, office, atOffice(at(t, "14:00")), dec, "", resume)
	assert.Equal(t, models.MedicalLeavePaid, rec.MedicalLeaveType)

	patch := BuildCheckOutPatch(rec, u, atOffice(at(t, "16:00")))
	// Full assigned-shift duration regardless of the 2h actually worked.
	assert.Equal(t, "9h 00m", patch.TotalHours)
}

func TestCheckOutResumedDayKeepsWorkedHoursWithRemark(t *testing.T) {
	u := employee()
	resume := BuildResumeRecord(u, at(t, "13:00"))
	dec := EvaluateCheckIn(resume, u, office, atOffice(at(t, "14:00")))
	require.True(t, dec.Allowed)
	rec := BuildCheckInRecord(u, office, atOffice(at(t, "14:00")), dec, "", resume)
	require.True(t, rec.ResumeRequested)

	patch := BuildCheckOutPatch(rec, u, atOffice(at(t, "17:00")))
	assert.Equal(t, "3h 00m", patch.TotalHours)
	assert.Contains(t, patch.Remarks, "worked 3h 00m of assigned 9h 00m shift")
	assert.True(t, patch.ClearResumeFlag)
}

func TestCompletedDayReopensOnlyThroughFreshResume(t *testing.T) {
	u := employee()
	rec := &models.AttendanceRecord{
		RecordID:     models.RecordKey(u.EmployeeID, "2026-01-22"),
		EmployeeID:   u.EmployeeID,
		Date:         "2026-01-22",
		CheckInTime:  "09:00 AM",
		CheckOutTime: "06:00 PM",
	}
	ds := DeriveStateAt(at(t, "19:00"), rec, u, office)
	assert.Equal(t, StateCompleted, ds.State)

	rec.ResumeRequested = true
	ds = DeriveStateAt(at(t, "19:00"), rec, u, office)
	assert.Equal(t, StateReadyToCheckIn, ds.State)
}

func TestEmergencyLeaveLeavesDayOpen(t *testing.T) {
	u := employee()
	dec := EvaluateCheckIn(nil, u, office, atOffice(at(t, "09:05")))
	require.True(t, dec.Allowed)
	rec := BuildCheckInRecord(u, office, atOffice(at(t, "09:05")), dec, "", nil)

	patch := BuildEmergencyLeavePatch(rec, at(t, "14:30"))
	assert.Equal(t, "02:30 PM", patch.EmergencyLeaveTime)
	assert.Equal(t, office.Name, patch.EmergencyLeaveLocation)
	assert.Contains(t, patch.Remarks, "Emergency leave at Headquarters")

	rec.EmergencyLeaveTime = patch.EmergencyLeaveTime
	rec.EmergencyLeaveLocation = patch.EmergencyLeaveLocation
	assert.Equal(t, StatusAbsent, DeriveStatus(rec))
	assert.Equal(t, "5h 25m", DisplayHours(rec))
}

func TestDeriveStatusPriorityAndTotality(t *testing.T) {
	cases := []struct {
		name string
		rec  *models.AttendanceRecord
		want Status
	}{
		{"nil record", nil, StatusAbsent},
		{"empty record", &models.AttendanceRecord{}, StatusAbsent},
		{"medical leave unclosed beats presence", &models.AttendanceRecord{
			CheckInTime: "09:00 AM", MedicalLeaveType: models.MedicalLeaveUnpaid,
			FingerprintVerified: true, GPSVerified: true,
		}, StatusAbsent},
		{"emergency leave unclosed beats presence", &models.AttendanceRecord{
			CheckInTime: "09:00 AM", EmergencyLeaveTime: "01:00 PM",
			FingerprintVerified: true, GPSVerified: true,
		}, StatusAbsent},
		{"closed day with both gates", &models.AttendanceRecord{
			CheckInTime: "09:00 AM", CheckOutTime: "06:00 PM",
			FingerprintVerified: true, GPSVerified: true,
		}, StatusPresent},
		{"closed paid leave day is present", &models.AttendanceRecord{
			CheckInTime: "02:00 PM", CheckOutTime: "04:00 PM",
			MedicalLeaveType:    models.MedicalLeavePaid,
			FingerprintVerified: true, GPSVerified: true,
		}, StatusPresent},
		{"open day is partial", &models.AttendanceRecord{CheckInTime: "09:00 AM"}, StatusPartial},
		{"closed without gate proof is partial", &models.AttendanceRecord{
			CheckInTime: "09:00 AM", CheckOutTime: "06:00 PM",
		}, StatusPartial},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.rec))
			// Pure function: a second call cannot disagree.
			assert.Equal(t, tc.want, DeriveStatus(tc.rec))
		})
	}
}
