package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"InOut-Attendance-Backend/models"
	util "InOut-Attendance-Backend/pkg/utils"
	"InOut-Attendance-Backend/repository"
)

type LocationHandler struct {
	locationRepo repository.LocationRepository
}

func NewLocationHandler(locationRepo repository.LocationRepository) *LocationHandler {
	return &LocationHandler{
		locationRepo: locationRepo,
	}
}

// GetAllLocations godoc
// @Summary List Locations
// @Description Lists all geofenced office locations
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{locations=array,total=int} "Location list"
// @Failure 500 {object} object{error=string} "Query failed"
// @Router /admin/locations [get]
func (h *LocationHandler) GetAllLocations(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	locations, err := h.locationRepo.FindAllLocations(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to list locations: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"locations": locations,
		"total":     len(locations),
	})
}

// GetLocationByID godoc
// @Summary Get Location
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} models.CompanyConfig "Location"
// @Failure 404 {object} object{error=string} "Location not found"
// @Router /admin/locations/{id} [get]
func (h *LocationHandler) GetLocationByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	loc, err := h.locationRepo.FindLocationByID(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to load location: %v", err)})
	}
	if loc == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "location not found"})
	}

	return c.Status(fiber.StatusOK).JSON(loc)
}

// CreateLocation godoc
// @Summary Create Location
// @Description Creates a geofenced office location; radius defaults to 100 meters
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body models.LocationCreatePayload true "Location data"
// @Success 201 {object} models.CompanyConfig "Created location"
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body or validation error"
// @Router /admin/locations [post]
func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	var payload models.LocationCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	radius := payload.Radius
	if radius <= 0 {
		radius = models.DefaultLocationRadius
	}

	loc := &models.CompanyConfig{
		ID:        uuid.NewString(),
		Name:      payload.Name,
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
		Radius:    radius,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.locationRepo.CreateLocation(ctx, loc); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to create location: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(loc)
}

// UpdateLocation godoc
// @Summary Update Location
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param location body models.LocationUpdatePayload true "Fields to update"
// @Success 200 {object} object{message=string} "Location updated"
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body or validation error"
// @Failure 404 {object} object{error=string} "Location not found"
// @Router /admin/locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	var payload models.LocationUpdatePayload
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
	if payload.Latitude != 0 {
		updateData["latitude"] = payload.Latitude
	}
	if payload.Longitude != 0 {
		updateData["longitude"] = payload.Longitude
	}
	if payload.Radius != 0 {
		updateData["radius"] = payload.Radius
	}
	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "nothing to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.locationRepo.UpdateLocation(ctx, c.Params("id"), updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to update location: %v", err)})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "location not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Location updated."})
}

// DeleteLocation godoc
// @Summary Delete Location
// @Description Removes a location; employees still assigned to it keep working in traveling mode until re-assigned
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} object{message=string} "Location deleted"
// @Failure 404 {object} object{error=string} "Location not found"
// @Router /admin/locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.locationRepo.DeleteLocation(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to delete location: %v", err)})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "location not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Location deleted."})
}
