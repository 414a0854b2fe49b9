package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"

	"InOut-Attendance-Backend/config"
	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/pkg/report"
	util "InOut-Attendance-Backend/pkg/utils"
	"InOut-Attendance-Backend/repository"
)

// ReportHandler renders the admin month reports: the JSON projection and
// the CSV/XLSX export artifacts with a shareable download QR.
type ReportHandler struct {
	attendanceRepo repository.AttendanceRepository
	userRepo       *repository.UserRepository
	cfg            *config.AppConfig
}

func NewReportHandler(attendanceRepo repository.AttendanceRepository, userRepo *repository.UserRepository, cfg *config.AppConfig) *ReportHandler {
	return &ReportHandler{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		cfg:            cfg,
	}
}

func (h *ReportHandler) loadMonth(ctx context.Context, employeeID string, year, month int) (*models.User, map[string]models.AttendanceRecord, error) {
	user, err := h.userRepo.FindUserByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("failed to load employee: %v", err))
	}
	if user == nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("no employee with id %s", employeeID))
	}

	records, err := h.attendanceRepo.FindByEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("failed to load month: %v", err))
	}
	return user, records, nil
}

// GetEmployeeReport godoc
// @Summary Monthly Report
// @Description Returns the projected month for one employee: a full calendar of days with derived status, display hours and transit route
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param employeeId path string true "Employee ID"
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} object{employee=string,year=int,month=int,days=array} "Projected month"
// @Failure 404 {object} object{error=string} "Employee not found"
// @Router /admin/reports/{employeeId} [get]
func (h *ReportHandler) GetEmployeeReport(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid year or month"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, records, err := h.loadMonth(ctx, c.Params("employeeId"), year, month)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"employee": user.Name,
		"year":     year,
		"month":    month,
		"days":     report.MonthView(records, year, time.Month(month)),
	})
}

// ExportReport godoc
// @Summary Export Monthly Report
// @Description Renders the month as a CSV or XLSX artifact, stores it under the reports dir and returns the download URL plus a QR code of that URL as base64 PNG
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employeeId path string true "Employee ID"
// @Param export body models.ReportExportPayload true "Month and format"
// @Success 201 {object} object{message=string,download_url=string,qr_code=string} "Artifact created"
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body or validation error"
// @Failure 404 {object} object{error=string} "Employee not found"
// @Failure 500 {object} object{error=string} "Failed to write artifact"
// @Router /admin/reports/{employeeId}/export [post]
func (h *ReportHandler) ExportReport(c *fiber.Ctx) error {
	var payload models.ReportExportPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	employeeID := c.Params("employeeId")
	user, records, err := h.loadMonth(ctx, employeeID, payload.Year, payload.Month)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	projection := report.MonthProjection(records, payload.Year, time.Month(payload.Month))

	if err := os.MkdirAll(h.cfg.ReportDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to prepare report dir: %v", err)})
	}

	filename := fmt.Sprintf("attendance_%s_%04d-%02d.%s", employeeID, payload.Year, payload.Month, payload.Format)
	path := filepath.Join(h.cfg.ReportDir, filename)

	switch payload.Format {
	case "csv":
		if err := os.WriteFile(path, []byte(report.CSV(projection)), 0o644); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to write csv: %v", err)})
		}
	case "xlsx":
		title := fmt.Sprintf("Attendance %s %04d-%02d", user.Name, payload.Year, payload.Month)
		f, err := report.XLSX(projection, title)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to render xlsx: %v", err)})
		}
		if err := f.SaveAs(path); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to write xlsx: %v", err)})
		}
	}

	downloadURL := fmt.Sprintf("%s/reports/%s", h.cfg.BaseURL, filename)

	png, err := qrcode.Encode(downloadURL, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to render share QR: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      fmt.Sprintf("Report for %s exported.", user.Name),
		"download_url": downloadURL,
		"qr_code":      "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	})
}
