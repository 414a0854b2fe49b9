package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/pkg/attendance"
	"InOut-Attendance-Backend/pkg/timeutil"
	util "InOut-Attendance-Backend/pkg/utils"
	"InOut-Attendance-Backend/repository"
)

// LeaveHandler owns the leave workflows: the employee-side emergency
// leave, medical leave request and resume request, plus the admin review
// that flips the profile statuses.
type LeaveHandler struct {
	attendanceRepo repository.AttendanceRepository
	userRepo       *repository.UserRepository
	locationRepo   repository.LocationRepository
}

func NewLeaveHandler(attendanceRepo repository.AttendanceRepository, userRepo *repository.UserRepository, locationRepo repository.LocationRepository) *LeaveHandler {
	return &LeaveHandler{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		locationRepo:   locationRepo,
	}
}

func (h *LeaveHandler) loadEmployee(ctx context.Context, c *fiber.Ctx) (*models.User, error) {
	helper := &AttendanceHandler{attendanceRepo: h.attendanceRepo, userRepo: h.userRepo, locationRepo: h.locationRepo}
	user, _, err := helper.loadActor(ctx, c)
	return user, err
}

// EmergencyLeave godoc
// @Summary Take Emergency Leave
// @Description Annotates the open day with the leave time and place; no geofence applies. The day stays open and reports as Absent unless later resumed and closed
// @Tags Leave
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param fix body models.EmergencyLeavePayload true "GPS fix"
// @Success 200 {object} object{message=string} "Leave recorded, pending review"
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body or validation error"
// @Failure 409 {object} object{error=string} "No open check-in today"
// @Router /attendance/emergency-leave [post]
func (h *LeaveHandler) EmergencyLeave(c *fiber.Ctx) error {
	var payload models.EmergencyLeavePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.loadEmployee(ctx, c)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	record, err := h.attendanceRepo.FindByRecordID(ctx, models.RecordKey(user.EmployeeID, timeutil.CurrentDateID()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to load today's record: %v", err)})
	}
	if record == nil || !record.IsOpen() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Emergency leave needs an open check-in."})
	}

	patch := attendance.BuildEmergencyLeavePatch(record, time.Now())
	fields := bson.M{
		"emergencyLeaveTime":     patch.EmergencyLeaveTime,
		"emergencyLeaveLocation": patch.EmergencyLeaveLocation,
		"remarks":                patch.Remarks,
	}
	if _, err := h.attendanceRepo.PatchRecord(ctx, record.RecordID, fields); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to record leave: %v", err)})
	}

	if _, err := h.userRepo.UpdateUser(ctx, user.UID, bson.M{"emergencyLeaveStatus": models.LeaveStatusPending}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to flag leave for review: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("Emergency leave recorded at %s. An admin will review it.", patch.EmergencyLeaveTime),
	})
}

// RequestMedicalLeave godoc
// @Summary Request Medical Leave
// @Description Marks the profile as pending medical leave, which blocks the normal check-in gate until an admin reviews it
// @Tags Leave
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string} "Request recorded"
// @Failure 409 {object} object{error=string} "A medical leave is already pending or approved"
// @Router /attendance/medical-leave [post]
func (h *LeaveHandler) RequestMedicalLeave(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.loadEmployee(ctx, c)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	if user.MedicalLeaveBlocked() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A medical leave is already pending or approved."})
	}

	fields := bson.M{
		"medicalLeaveStatus": models.LeaveStatusPending,
		"medicalLeaveType":   models.MedicalLeaveNone,
	}
	if _, err := h.userRepo.UpdateUser(ctx, user.UID, fields); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to record request: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Medical leave requested. Check-in stays blocked until an admin reviews it.",
	})
}

// RequestResume godoc
// @Summary Request Resume
// @Description Re-opens the check-in gate on a completed or leave day. Creates a bare record when the day has none yet
// @Tags Leave
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string} "Resume requested"
// @Failure 409 {object} object{error=string} "Day is still open"
// @Router /attendance/resume-request [post]
func (h *LeaveHandler) RequestResume(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.loadEmployee(ctx, c)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	now := time.Now()
	record, err := h.attendanceRepo.FindByRecordID(ctx, models.RecordKey(user.EmployeeID, now.Format(timeutil.DateIDLayout)))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to load today's record: %v", err)})
	}

	if record == nil {
		bare := attendance.BuildResumeRecord(user, now)
		if err := h.attendanceRepo.ReplaceRecord(ctx, bare); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to create resume record: %v", err)})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Resume requested. Check-in is open."})
	}

	if record.IsOpen() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Day is still open; check out before requesting a resume."})
	}

	if _, err := h.attendanceRepo.PatchRecord(ctx, record.RecordID, bson.M{"resumeRequested": true}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to record resume request: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Resume requested. Check-in is open again."})
}

// GetPendingLeaveRequests godoc
// @Summary List Pending Leave Requests
// @Description Lists employees with a pending emergency or medical leave
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{requests=array,total=int} "Pending requests"
// @Failure 500 {object} object{error=string} "Query failed"
// @Router /admin/leave-requests [get]
func (h *LeaveHandler) GetPendingLeaveRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	users, err := h.userRepo.FindPendingLeaveRequests(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to list leave requests: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"requests": users,
		"total":    len(users),
	})
}

// ReviewLeave godoc
// @Summary Review Leave Request
// @Description Approves or rejects a pending emergency or medical leave. Approving a medical leave also sets the paid/unpaid type, which decides the shift credit at checkout
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User UID"
// @Param review body models.LeaveReviewPayload true "Review decision"
// @Success 200 {object} object{message=string} "Review applied"
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body or validation error"
// @Failure 404 {object} object{error=string} "User not found"
// @Failure 409 {object} object{error=string} "No pending request of that kind"
// @Router /admin/employees/{id}/leave-status [put]
func (h *LeaveHandler) ReviewLeave(c *fiber.Ctx) error {
	uid := c.Params("id")

	var payload models.LeaveReviewPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, uid)
	if err != nil || user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}

	fields := bson.M{}
	switch payload.Kind {
	case "emergency":
		if user.EmergencyLeaveStatus != models.LeaveStatusPending {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "no pending emergency leave for this employee"})
		}
		if payload.Status == "approved" {
			fields["emergencyLeaveStatus"] = models.LeaveStatusApproved
		} else {
			fields["emergencyLeaveStatus"] = models.LeaveStatusNone
		}

	case "medical":
		if user.MedicalLeaveStatus != models.LeaveStatusPending {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "no pending medical leave for this employee"})
		}
		if payload.Status == "approved" {
			if payload.MedicalLeaveType != models.MedicalLeavePaid && payload.MedicalLeaveType != models.MedicalLeaveUnpaid {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "approving a medical leave requires medical_leave_type paid or unpaid"})
			}
			fields["medicalLeaveStatus"] = models.LeaveStatusApproved
			fields["medicalLeaveType"] = payload.MedicalLeaveType
		} else {
			fields["medicalLeaveStatus"] = models.LeaveStatusNone
			fields["medicalLeaveType"] = models.MedicalLeaveNone
		}
	}

	if _, err := h.userRepo.UpdateUser(ctx, uid, fields); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to apply review: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("Leave request %s.", payload.Status),
	})
}
