package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"InOut-Attendance-Backend/config"
	_ "InOut-Attendance-Backend/docs"
	"InOut-Attendance-Backend/repository"
	"InOut-Attendance-Backend/router"
	"InOut-Attendance-Backend/seeder"
	_ "time/tzdata"
)

// @title InOut Attendance API
// @version 1.0
// @description GPS and biometric gated attendance tracking: check-in/transit/check-out state machine, leave workflows and monthly reports
//
// @contact.name API Support
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Users
// @tag.description Profile endpoints
//
// @tag.name Attendance
// @tag.description Check-in, transit, check-out and history endpoints
//
// @tag.name Leave
// @tag.description Emergency and medical leave workflows
//
// @tag.name Admin
// @tag.description Admin only endpoints
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase()
	defer config.DisconnectDB()

	if os.Getenv("SEED") == "true" {
		locations := seeder.SeedLocations(repository.NewLocationRepository())
		seeder.SeedUsers(repository.NewUserRepository(), locations)
	}

	app := fiber.New()

	config.SetupCORS(app)
	app.Use(logger.New())

	router.SetupRoutes(app, cfg)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
