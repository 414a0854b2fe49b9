package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"InOut-Attendance-Backend/config"
	"InOut-Attendance-Backend/config/middleware"
	_ "InOut-Attendance-Backend/docs"
	"InOut-Attendance-Backend/handlers"
	"InOut-Attendance-Backend/repository"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig) {
	log.Println("Registering application routes...")

	// Repositories
	userRepo := repository.NewUserRepository()
	locationRepo := repository.NewLocationRepository()
	attendanceRepo := repository.NewAttendanceRepository()

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo)
	userHandler := handlers.NewUserHandler(userRepo, locationRepo)
	locationHandler := handlers.NewLocationHandler(locationRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo, userRepo, locationRepo)
	leaveHandler := handlers.NewLeaveHandler(attendanceRepo, userRepo, locationRepo)
	reportHandler := handlers.NewReportHandler(attendanceRepo, userRepo, cfg)

	// Health check, docs and report downloads
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "InOut Attendance API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/reports", cfg.ReportDir)

	api := app.Group("/api/v1")

	// Authentication
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware(), authHandler.Logout)

	// Profile
	userGroup := api.Group("/users", middleware.AuthMiddleware())
	userGroup.Post("/change-password", authHandler.ChangePassword)
	userGroup.Get("/me", userHandler.GetMe)
	userGroup.Put("/me", userHandler.UpdateMe)

	// Attendance (employee)
	attendanceGroup := api.Group("/attendance", middleware.AuthMiddleware())
	attendanceGroup.Get("/today", attendanceHandler.GetToday)
	attendanceGroup.Get("/today/stream", attendanceHandler.TodayStream)
	attendanceGroup.Post("/check-in", attendanceHandler.CheckIn)
	attendanceGroup.Post("/transit", attendanceHandler.Transit)
	attendanceGroup.Post("/check-out", attendanceHandler.CheckOut)
	attendanceGroup.Post("/emergency-leave", leaveHandler.EmergencyLeave)
	attendanceGroup.Post("/medical-leave", leaveHandler.RequestMedicalLeave)
	attendanceGroup.Post("/resume-request", leaveHandler.RequestResume)
	attendanceGroup.Get("/my-history", attendanceHandler.MyHistory)

	// Admin
	adminGroup := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	adminGroup.Get("/employees", userHandler.GetEmployees)
	adminGroup.Put("/employees/:id/assignment", userHandler.UpdateAssignment)
	adminGroup.Post("/employees/bulk-assignment", userHandler.BulkAssignment)
	adminGroup.Put("/employees/:id/leave-status", leaveHandler.ReviewLeave)
	adminGroup.Delete("/employees/:id", userHandler.DeleteUser)
	adminGroup.Get("/leave-requests", leaveHandler.GetPendingLeaveRequests)

	adminGroup.Get("/locations", locationHandler.GetAllLocations)
	adminGroup.Get("/locations/:id", locationHandler.GetLocationByID)
	adminGroup.Post("/locations", locationHandler.CreateLocation)
	adminGroup.Put("/locations/:id", locationHandler.UpdateLocation)
	adminGroup.Delete("/locations/:id", locationHandler.DeleteLocation)

	adminGroup.Get("/reports/:employeeId", reportHandler.GetEmployeeReport)
	adminGroup.Post("/reports/:employeeId/export", reportHandler.ExportReport)

	log.Println("All application routes registered.")
	log.Println("Swagger documentation available at: /docs/index.html")
}
