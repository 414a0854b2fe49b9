package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.mongodb.org/mongo-driver/bson"

	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/pkg/attendance"
	"InOut-Attendance-Backend/pkg/paseto"
	"InOut-Attendance-Backend/pkg/report"
	"InOut-Attendance-Backend/pkg/timeutil"
	util "InOut-Attendance-Backend/pkg/utils"
	"InOut-Attendance-Backend/repository"
)

type AttendanceHandler struct {
	attendanceRepo repository.AttendanceRepository
	userRepo       *repository.UserRepository
	locationRepo   repository.LocationRepository
}

func NewAttendanceHandler(attendanceRepo repository.AttendanceRepository, userRepo *repository.UserRepository, locationRepo repository.LocationRepository) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		locationRepo:   locationRepo,
	}
}

// loadActor resolves the logged-in employee plus their assigned location.
// The location may be nil for traveling employees whose office was removed.
func (h *AttendanceHandler) loadActor(ctx context.Context, c *fiber.Ctx) (*models.User, *models.CompanyConfig, error) {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
	}

	user, err := h.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("failed to load profile: %v", err))
	}
	if user == nil {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "user not found")
	}
	if !user.Approved || user.EmployeeID == "" {
		return nil, nil, fiber.NewError(fiber.StatusForbidden, "Account is not approved for attendance yet.")
	}

	var loc *models.CompanyConfig
	if user.AssignedLocationID != "" {
		loc, err = h.locationRepo.FindLocationByID(ctx, user.AssignedLocationID)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("failed to load assigned location: %v", err))
		}
	}
	if loc == nil && !user.IsTraveling {
		return nil, nil, fiber.NewError(fiber.StatusConflict, "No workplace assigned. Ask an admin to assign one.")
	}

	return user, loc, nil
}

func denyStatus(code attendance.DenyCode) int {
	if code == attendance.DenyState {
		return fiber.StatusConflict
	}
	return fiber.StatusForbidden
}

// GetToday godoc
// @Summary Today's Attendance
// @Description Returns today's record (if any) with the derived day state and which actions are currently allowed
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{record=models.AttendanceRecord,day_state=object,status=string} "Today's snapshot"
// @Failure 403 {object} object{error=string} "Account not approved"
// @Router /attendance/today [get]
func (h *AttendanceHandler) GetToday(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, loc, err := h.loadActor(ctx, c)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	record, err := h.attendanceRepo.FindByRecordID(ctx, models.RecordKey(user.EmployeeID, timeutil.CurrentDateID()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to load today's record: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"record":    record,
		"day_state": attendance.DeriveState(record, user, loc),
		"status":    attendance.DeriveStatus(record),
	})
}

// CheckIn godoc
// @Summary Check In
// @Description Opens the day after the biometric verdict and geofence pass; traveling mode bypasses the geofence
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gates body models.GateActionPayload true "Biometric verdict and GPS fix"
// @Success 201 {object} object{message=string,record=models.AttendanceRecord} "Checked in"
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body or validation error"
// @Failure 403 {object} object{error=string,code=string} "Gate denied"
// @Failure 409 {object} object{error=string,code=string} "Wrong state"
// @Router /attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var payload models.GateActionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, loc, err := h.loadActor(ctx, c)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	if loc == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "No workplace assigned. Ask an admin to assign one."})
	}

	gates := attendance.Gates{
		FingerprintOK: payload.FingerprintVerified,
		Lat:           payload.Lat,
		Lng:           payload.Lng,
		Now:           time.Now(),
	}

	prior, err := h.attendanceRepo.FindByRecordID(ctx, models.RecordKey(user.EmployeeID, gates.Now.Format(timeutil.DateIDLayout)))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to load today's record: %v", err)})
	}

	decision := attendance.EvaluateCheckIn(prior, user, loc, gates)
	if !decision.Allowed {
		return c.Status(denyStatus(decision.Code)).JSON(fiber.Map{"error": decision.Message, "code": decision.Code})
	}

	record := attendance.BuildCheckInRecord(user, loc, gates, decision, payload.Address, prior)
	if err := h.attendanceRepo.ReplaceRecord(ctx, record); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to save check-in: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Checked in at %s.", record.CheckInTime),
		"record":  record,
	})
}

// Transit godoc
// @Summary Verify Transit
// @Description Re-verifies presence at the currently assigned location after a mid-shift re-assignment
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gates body models.GateActionPayload true "Biometric verdict and GPS fix"
// @Success 200 {object} object{message=string} "Transit verified"
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body or validation error"
// @Failure 403 {object} object{error=string,code=string} "Gate denied"
// @Failure 409 {object} object{error=string,code=string} "No open check-in"
// @Router /attendance/transit [post]
func (h *AttendanceHandler) Transit(c *fiber.Ctx) error {
	var payload models.GateActionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, loc, err := h.loadActor(ctx, c)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	if loc == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "No workplace assigned to verify against."})
	}

	gates := attendance.Gates{
		FingerprintOK: payload.FingerprintVerified,
		Lat:           payload.Lat,
		Lng:           payload.Lng,
		Now:           time.Now(),
	}

	record, err := h.attendanceRepo.FindByRecordID(ctx, models.RecordKey(user.EmployeeID, timeutil.CurrentDateID()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to load today's record: %v", err)})
	}

	decision := attendance.EvaluateTransit(record, loc, gates)
	if !decision.Allowed {
		return c.Status(denyStatus(decision.Code)).JSON(fiber.Map{"error": decision.Message, "code": decision.Code})
	}

	patch := attendance.BuildTransitPatch(record, loc, decision)
	if _, err := h.attendanceRepo.ApplyTransit(ctx, record.RecordID, patch); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to save transit: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("Presence verified at %s.", loc.Name),
	})
}

// CheckOut godoc
// @Summary Check Out
// @Description Closes the day; computes total and overtime hours, applies paid-leave credit and resume remarks
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gates body models.GateActionPayload true "Biometric verdict and GPS fix"
// @Success 200 {object} object{message=string,total_hours=string,overtime_hours=string} "Checked out"
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body or validation error"
// @Failure 403 {object} object{error=string,code=string} "Gate denied"
// @Failure 409 {object} object{error=string,code=string} "No open check-in"
// @Router /attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	var payload models.GateActionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, loc, err := h.loadActor(ctx, c)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	if loc == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "No workplace assigned to check out from."})
	}

	gates := attendance.Gates{
		FingerprintOK: payload.FingerprintVerified,
		Lat:           payload.Lat,
		Lng:           payload.Lng,
		Now:           time.Now(),
	}

	record, err := h.attendanceRepo.FindByRecordID(ctx, models.RecordKey(user.EmployeeID, timeutil.CurrentDateID()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to load today's record: %v", err)})
	}

	decision := attendance.EvaluateCheckOut(record, loc, gates)
	if !decision.Allowed {
		return c.Status(denyStatus(decision.Code)).JSON(fiber.Map{"error": decision.Message, "code": decision.Code})
	}

	patch := attendance.BuildCheckOutPatch(record, user, gates)
	fields := bson.M{
		"checkOutTime":  patch.CheckOutTime,
		"checkOutLat":   patch.CheckOutLat,
		"checkOutLng":   patch.CheckOutLng,
		"totalHours":    patch.TotalHours,
		"overtimeHours": patch.OvertimeHours,
	}
	if patch.Remarks != "" {
		fields["remarks"] = patch.Remarks
	}
	if patch.ClearResumeFlag {
		fields["resumeRequested"] = false
	}

	if _, err := h.attendanceRepo.PatchRecord(ctx, record.RecordID, fields); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to save check-out: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":        fmt.Sprintf("Checked out at %s.", patch.CheckOutTime),
		"total_hours":    patch.TotalHours,
		"overtime_hours": patch.OvertimeHours,
	})
}

// MyHistory godoc
// @Summary My Monthly History
// @Description Returns the projected month: one entry per calendar day with derived status, display hours and transit route
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} object{year=int,month=int,days=array} "Projected month"
// @Failure 400 {object} object{error=string} "Invalid year or month"
// @Router /attendance/my-history [get]
func (h *AttendanceHandler) MyHistory(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid year or month"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, _, err := h.loadActor(ctx, c)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	records, err := h.attendanceRepo.FindByEmployeeMonth(ctx, user.EmployeeID, year, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to load month: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"year":  year,
		"month": month,
		"days":  report.MonthView(records, year, time.Month(month)),
	})
}

// TodayStream godoc
// @Summary Today's Attendance Stream
// @Description Server-sent events: pushes a fresh snapshot (record, day state, status) on every change to today's record
// @Tags Attendance
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "SSE stream"
// @Failure 403 {object} object{error=string} "Account not approved"
// @Router /attendance/today/stream [get]
func (h *AttendanceHandler) TodayStream(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, loc, err := h.loadActor(ctx, c)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	recordID := models.RecordKey(user.EmployeeID, timeutil.CurrentDateID())

	// The stream outlives this handler; it ends when the client goes away
	// or the day's change stream breaks, whichever comes first.
	streamCtx, stopStream := context.WithCancel(context.Background())

	snapshots, err := h.attendanceRepo.WatchRecord(streamCtx, recordID)
	if err != nil {
		stopStream()
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": fmt.Sprintf("failed to subscribe: %v", err)})
	}

	initial, err := h.attendanceRepo.FindByRecordID(ctx, recordID)
	if err != nil {
		stopStream()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to load today's record: %v", err)})
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer stopStream()

		writeSnapshot := func(rec *models.AttendanceRecord) bool {
			payload, err := json.Marshal(fiber.Map{
				"record":    rec,
				"day_state": attendance.DeriveState(rec, user, loc),
				"status":    attendance.DeriveStatus(rec),
			})
			if err != nil {
				return false
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return false
			}
			return w.Flush() == nil
		}

		if !writeSnapshot(initial) {
			return
		}
		for rec := range snapshots {
			snapshot := rec
			if !writeSnapshot(&snapshot) {
				return
			}
		}
	}))

	return nil
}
