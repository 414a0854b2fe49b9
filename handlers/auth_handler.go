package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/pkg/paseto"
	"InOut-Attendance-Backend/pkg/password"
	util "InOut-Attendance-Backend/pkg/utils"
	"InOut-Attendance-Backend/repository"
)

type AuthHandler struct {
	userRepo *repository.UserRepository
}

func NewAuthHandler(userRepo *repository.UserRepository) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
	}
}

// Register godoc
// @Summary Register Employee
// @Description Self-registration; the account stays unapproved until an admin assigns an employee id and workplace
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.UserRegisterPayload true "Registration data"
// @Success 201 {object} object{message=string,user_id=string} "Account created, pending approval"
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body or validation error"
// @Failure 409 {object} object{error=string} "Email already registered"
// @Failure 500 {object} object{error=string} "Failed to hash password or create user"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload models.UserRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}

	newUser := &models.User{
		UID:                  uuid.NewString(),
		Name:                 payload.Name,
		Email:                payload.Email,
		Password:             hashedPassword,
		Phone:                payload.Phone,
		Role:                 "employee",
		Approved:             false,
		EmergencyLeaveStatus: models.LeaveStatusNone,
		MedicalLeaveStatus:   models.LeaveStatusNone,
		MedicalLeaveType:     models.MedicalLeaveNone,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.userRepo.CreateUser(ctx, newUser); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": fmt.Sprintf("failed to register user: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration received. An admin has to approve the account before check-in works.",
		"user_id": newUser.UID,
	})
}

// Login godoc
// @Summary Login
// @Description Verifies the credentials and returns a PASETO token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Login credentials"
// @Success 200 {object} object{message=string,token=string,user=models.User} "Login successful"
// @Failure 400 {object} object{error=string,errors=array} "Invalid payload or validation error"
// @Failure 401 {object} object{error=string} "Wrong email and password combination"
// @Failure 500 {object} object{error=string} "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong email and password combination"})
	}

	if !password.CheckPasswordHash(payload.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong email and password combination"})
	}

	token, err := paseto.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to issue token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// ChangePassword godoc
// @Summary Change Password
// @Description Changes the password of the logged-in user
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param password body models.ChangePasswordPayload true "Old and new password"
// @Success 200 {object} object{message=string} "Password changed"
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body or validation error"
// @Failure 401 {object} object{error=string} "Not authenticated or old password wrong"
// @Failure 500 {object} object{error=string} "User not found or update failed"
// @Router /users/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	var payload models.ChangePasswordPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil || user == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "user not found"})
	}

	if !password.CheckPasswordHash(payload.OldPassword, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Old password does not match"})
	}

	if payload.NewPassword == payload.OldPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "New password must differ from the old one."})
	}

	newHashedPassword, err := password.HashPassword(payload.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash new password"})
	}

	_, err = h.userRepo.UpdateUser(ctx, claims.UserID, bson.M{"password": newHashedPassword})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to update password: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password changed."})
}

// Logout godoc
// @Summary Logout
// @Description Tokens are stateless; logout tells the client to discard its token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string} "Logout successful"
// @Failure 401 {object} object{error=string} "Not authenticated"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	_, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logout successful. Discard the token on the client.",
	})
}
