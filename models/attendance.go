package models

// AttendanceRecord is one employee-day. The document id is the composite
// recordId (employeeId + "_" + dateId) so a given (employee, date) pair is
// unique by construction. Creation happens only through check-in or a
// resume request; once CheckOutTime is set the day is terminal unless a
// new resume cycle re-opens it.
type AttendanceRecord struct {
	RecordID     string `json:"record_id" bson:"_id"`
	EmployeeID   string `json:"employee_id" bson:"employeeId"`
	EmployeeName string `json:"employee_name" bson:"employeeName,omitempty"`
	Date         string `json:"date" bson:"date"`
	DayOfWeek    string `json:"day_of_week" bson:"dayOfWeek,omitempty"`

	CheckInTime string  `json:"check_in_time" bson:"checkInTime,omitempty"`
	CheckInLat  float64 `json:"check_in_lat" bson:"checkInLat,omitempty"`
	CheckInLng  float64 `json:"check_in_lng" bson:"checkInLng,omitempty"`

	CheckOutTime string  `json:"check_out_time" bson:"checkOutTime,omitempty"`
	CheckOutLat  float64 `json:"check_out_lat" bson:"checkOutLat,omitempty"`
	CheckOutLng  float64 `json:"check_out_lng" bson:"checkOutLng,omitempty"`

	TotalHours    string `json:"total_hours" bson:"totalHours,omitempty"`
	OvertimeHours string `json:"overtime_hours" bson:"overtimeHours,omitempty"`

	LocationName           string   `json:"location_name" bson:"locationName,omitempty"`
	DistanceMeters         float64  `json:"distance_meters" bson:"distanceMeters,omitempty"`
	MovementLog            []string `json:"movement_log" bson:"movementLog,omitempty"`
	LastVerifiedLocationID string   `json:"last_verified_location_id" bson:"lastVerifiedLocationId,omitempty"`
	AssignedShift          string   `json:"assigned_shift" bson:"assignedShift,omitempty"`
	StartLocationName      string   `json:"start_location_name" bson:"startLocationName,omitempty"`

	EmergencyLeaveTime     string `json:"emergency_leave_time" bson:"emergencyLeaveTime,omitempty"`
	EmergencyLeaveLocation string `json:"emergency_leave_location" bson:"emergencyLeaveLocation,omitempty"`
	Remarks                string `json:"remarks" bson:"remarks,omitempty"`

	ResumeRequested  bool   `json:"resume_requested" bson:"resumeRequested,omitempty"`
	MedicalLeaveType string `json:"medical_leave_type" bson:"medicalLeaveType,omitempty"`

	FingerprintVerified bool `json:"fingerprint_verified" bson:"fingerprintVerified,omitempty"`
	GPSVerified         bool `json:"gps_verified" bson:"gpsVerified,omitempty"`

	Timestamp int64 `json:"timestamp" bson:"timestamp,omitempty"`
}

// IsOpen reports whether the day is still open: checked in, not yet
// checked out. Transit, check-out and emergency leave require an open day.
func (r *AttendanceRecord) IsOpen() bool {
	return r.CheckInTime != "" && r.CheckOutTime == ""
}

// IsClosed reports whether the day has reached its terminal checkout.
func (r *AttendanceRecord) IsClosed() bool {
	return r.CheckOutTime != ""
}

// RecordKey builds the composite document id for an employee-day.
func RecordKey(employeeID, dateID string) string {
	return employeeID + "_" + dateID
}

// GateActionPayload carries the already-resolved gate results for a
// check-in, transit or check-out attempt: the biometric verdict from the
// device prompt and the single-shot GPS fix.
type GateActionPayload struct {
	Lat                 float64 `json:"lat" validate:"required,latitude"`
	Lng                 float64 `json:"lng" validate:"required,longitude"`
	FingerprintVerified bool    `json:"fingerprint_verified"`
	// Address is the device's reverse-geocoded label, used only for a
	// traveling-mode remote start. Blank degrades to "Remote Location".
	Address string `json:"address,omitempty"`
}

// EmergencyLeavePayload needs a location fix but no geofence; the leave is
// granted from wherever the employee is.
type EmergencyLeavePayload struct {
	Lat float64 `json:"lat" validate:"required,latitude"`
	Lng float64 `json:"lng" validate:"required,longitude"`
}

// ReportExportPayload selects the month and artifact format for an
// admin report export.
type ReportExportPayload struct {
	Year   int    `json:"year" validate:"required,min=2000,max=2100"`
	Month  int    `json:"month" validate:"required,min=1,max=12"`
	Format string `json:"format" validate:"required,oneof=csv xlsx"`
}
