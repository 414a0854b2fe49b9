package models

import (
	"time"
)

// Leave status values stored on the user profile.
const (
	LeaveStatusNone     = "none"
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
)

// Medical leave types assigned on approval.
const (
	MedicalLeaveNone   = "none"
	MedicalLeavePaid   = "paid"
	MedicalLeaveUnpaid = "unpaid"
)

// User is an employee or admin profile. Leave statuses are mutated only by
// the leave-request actions and by admin review, never by the attendance
// state machine directly.
type User struct {
	UID                  string    `json:"uid" bson:"_id"`
	Name                 string    `json:"name" bson:"name,omitempty"`
	Email                string    `json:"email" bson:"email,omitempty"`
	Password             string    `json:"-" bson:"password,omitempty"`
	Phone                string    `json:"phone" bson:"phone,omitempty"`
	Role                 string    `json:"role" bson:"role,omitempty"`
	Approved             bool      `json:"approved" bson:"approved"`
	EmployeeID           string    `json:"employee_id" bson:"employeeId,omitempty"`
	PhotoURL             string    `json:"photo_url" bson:"photoUrl,omitempty"`
	AssignedLocationID   string    `json:"assigned_location_id" bson:"assignedLocationId,omitempty"`
	IsTraveling          bool      `json:"is_traveling" bson:"isTraveling"`
	ShiftStartTime       string    `json:"shift_start_time" bson:"shiftStartTime,omitempty"`
	ShiftEndTime         string    `json:"shift_end_time" bson:"shiftEndTime,omitempty"`
	EmergencyLeaveStatus string    `json:"emergency_leave_status" bson:"emergencyLeaveStatus,omitempty"`
	MedicalLeaveStatus   string    `json:"medical_leave_status" bson:"medicalLeaveStatus,omitempty"`
	MedicalLeaveType     string    `json:"medical_leave_type" bson:"medicalLeaveType,omitempty"`
	CreatedAt            time.Time `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt            time.Time `json:"updated_at" bson:"updated_at,omitempty"`
}

// AssignedShift renders the shift window snapshot stored on check-in,
// e.g. "09:00 AM - 06:00 PM", or "N/A" when no shift is configured.
func (u *User) AssignedShift() string {
	if u.ShiftStartTime == "" || u.ShiftEndTime == "" {
		return "N/A"
	}
	return u.ShiftStartTime + " - " + u.ShiftEndTime
}

// MedicalLeaveBlocked reports whether a pending or approved medical leave
// blocks the normal time-gated check-in path.
func (u *User) MedicalLeaveBlocked() bool {
	return u.MedicalLeaveStatus == LeaveStatusPending || u.MedicalLeaveStatus == LeaveStatusApproved
}

type UserRegisterPayload struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=50,hasuppercase"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserUpdatePayload struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	PhotoURL string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=50,hasuppercase"`
}

// AssignmentPayload is the admin action that approves an employee and wires
// their workplace, shift window and traveling mode.
type AssignmentPayload struct {
	EmployeeID         string `json:"employee_id" validate:"required,min=3,max=20"`
	AssignedLocationID string `json:"assigned_location_id" validate:"required"`
	IsTraveling        bool   `json:"is_traveling"`
	ShiftStartTime     string `json:"shift_start_time" validate:"omitempty,timeofday"`
	ShiftEndTime       string `json:"shift_end_time" validate:"omitempty,timeofday"`
}

// BulkAssignmentPayload re-assigns a set of employees to one location
// mid-shift; affected employees must re-verify through a Transit action.
type BulkAssignmentPayload struct {
	UserIDs            []string `json:"user_ids" validate:"required,min=1"`
	AssignedLocationID string   `json:"assigned_location_id" validate:"required"`
	IsTraveling        bool     `json:"is_traveling"`
	ShiftStartTime     string   `json:"shift_start_time" validate:"omitempty,timeofday"`
	ShiftEndTime       string   `json:"shift_end_time" validate:"omitempty,timeofday"`
}

// LeaveReviewPayload is the admin decision on a pending emergency or
// medical leave request.
type LeaveReviewPayload struct {
	Kind             string `json:"kind" validate:"required,oneof=emergency medical"`
	Status           string `json:"status" validate:"required,oneof=approved rejected"`
	MedicalLeaveType string `json:"medical_leave_type" validate:"omitempty,oneof=none paid unpaid"`
}
