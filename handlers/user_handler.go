package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/pkg/paseto"
	util "InOut-Attendance-Backend/pkg/utils"
	"InOut-Attendance-Backend/repository"
)

type UserHandler struct {
	userRepo     *repository.UserRepository
	locationRepo repository.LocationRepository
}

func NewUserHandler(userRepo *repository.UserRepository, locationRepo repository.LocationRepository) *UserHandler {
	return &UserHandler{
		userRepo:     userRepo,
		locationRepo: locationRepo,
	}
}

// GetMe godoc
// @Summary Get My Profile
// @Description Returns the logged-in user's profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "Profile"
// @Failure 401 {object} object{error=string} "Not authenticated"
// @Failure 404 {object} object{error=string} "User not found"
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to load profile: %v", err)})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateMe godoc
// @Summary Update My Profile
// @Description Updates the logged-in user's own profile fields (name, phone, photo)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.UserUpdatePayload true "Profile fields"
// @Success 200 {object} object{message=string} "Profile updated"
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body or validation error"
// @Failure 401 {object} object{error=string} "Not authenticated"
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var payload models.UserUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	updateData := bson.M{}
	if payload.Name != "" {
		updateData["name"] = payload.Name
	}
	if payload.Phone != "" {
		updateData["phone"] = payload.Phone
	}
	if payload.PhotoURL != "" {
		updateData["photoUrl"] = payload.PhotoURL
	}
	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "nothing to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.userRepo.UpdateUser(ctx, claims.UserID, updateData); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to update profile: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Profile updated."})
}

// GetEmployees godoc
// @Summary List Employees
// @Description Lists employee accounts; ?approved=true restricts to approved ones
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param approved query bool false "Only approved employees"
// @Success 200 {object} object{employees=array,total=int} "Employee list"
// @Failure 500 {object} object{error=string} "Query failed"
// @Router /admin/employees [get]
func (h *UserHandler) GetEmployees(c *fiber.Ctx) error {
	approvedOnly := c.QueryBool("approved", false)

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employees, err := h.userRepo.FindEmployees(ctx, approvedOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to list employees: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"employees": employees,
		"total":     len(employees),
	})
}

// UpdateAssignment godoc
// @Summary Assign Employee
// @Description Approves an employee and assigns employee id, workplace, shift window and traveling mode
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User UID"
// @Param assignment body models.AssignmentPayload true "Assignment data"
// @Success 200 {object} object{message=string} "Employee assigned"
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body or validation error"
// @Failure 404 {object} object{error=string} "User or location not found"
// @Failure 409 {object} object{error=string} "Employee id already taken"
// @Router /admin/employees/{id}/assignment [put]
func (h *UserHandler) UpdateAssignment(c *fiber.Ctx) error {
	uid := c.Params("id")

	var payload models.AssignmentPayload
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

	loc, err := h.locationRepo.FindLocationByID(ctx, payload.AssignedLocationID)
	if err != nil || loc == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "assigned location not found"})
	}

	// The employee id becomes part of every attendance record key, so it
	// must stay unique across profiles.
	existing, err := h.userRepo.FindUserByEmployeeID(ctx, payload.EmployeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to verify employee id: %v", err)})
	}
	if existing != nil && existing.UID != uid {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": fmt.Sprintf("employee id %s is already taken", payload.EmployeeID)})
	}

	updateData := bson.M{
		"approved":           true,
		"employeeId":         payload.EmployeeID,
		"assignedLocationId": payload.AssignedLocationID,
		"isTraveling":        payload.IsTraveling,
		"shiftStartTime":     payload.ShiftStartTime,
		"shiftEndTime":       payload.ShiftEndTime,
	}

	if _, err := h.userRepo.UpdateUser(ctx, uid, updateData); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to assign employee: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Employee approved and assigned."})
}

// BulkAssignment godoc
// @Summary Bulk Re-assign Employees
// @Description Moves a set of employees to one location; moved employees must re-verify through a transit action
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assignment body models.BulkAssignmentPayload true "Bulk assignment data"
// @Success 200 {object} object{message=string,modified=int} "Employees re-assigned"
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body or validation error"
// @Failure 404 {object} object{error=string} "Location not found"
// @Router /admin/employees/bulk-assignment [post]
func (h *UserHandler) BulkAssignment(c *fiber.Ctx) error {
	var payload models.BulkAssignmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	loc, err := h.locationRepo.FindLocationByID(ctx, payload.AssignedLocationID)
	if err != nil || loc == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "assigned location not found"})
	}

	updateData := bson.M{
		"assignedLocationId": payload.AssignedLocationID,
		"isTraveling":        payload.IsTraveling,
	}
	if payload.ShiftStartTime != "" {
		updateData["shiftStartTime"] = payload.ShiftStartTime
	}
	if payload.ShiftEndTime != "" {
		updateData["shiftEndTime"] = payload.ShiftEndTime
	}

	result, err := h.userRepo.BulkAssign(ctx, payload.UserIDs, updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to re-assign employees: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  fmt.Sprintf("Employees re-assigned to %s. They must verify through a transit action.", loc.Name),
		"modified": result.ModifiedCount,
	})
}

// DeleteUser godoc
// @Summary Delete Employee
// @Description Removes an employee account; past attendance records are kept for reporting
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User UID"
// @Success 200 {object} object{message=string} "User deleted"
// @Failure 404 {object} object{error=string} "User not found"
// @Router /admin/employees/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	uid := c.Params("id")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.userRepo.DeleteUser(ctx, uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to delete user: %v", err)})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted."})
}
