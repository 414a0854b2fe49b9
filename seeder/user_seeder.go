package seeder

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/repository"
)

// SeedUsers creates the admin account and a batch of approved employees
// spread over the seeded office locations, each with a shift window.
func SeedUsers(userRepo *repository.UserRepository, locations []models.CompanyConfig) {
	log.Println("🌱 Seeding users...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	adminEmail := "admin@inout.local"
	admin, err := userRepo.FindUserByEmail(ctx, adminEmail)
	if err == nil && admin != nil {
		log.Println("✅ Admin user already present, skipping admin seeding.")
	} else {
		newAdmin := &models.User{
			UID:                  uuid.NewString(),
			Name:                 "Main Admin",
			Email:                adminEmail,
			Password:             string(hashedPassword),
			Role:                 "admin",
			Approved:             true,
			EmergencyLeaveStatus: models.LeaveStatusNone,
			MedicalLeaveStatus:   models.LeaveStatusNone,
			MedicalLeaveType:     models.MedicalLeaveNone,
			CreatedAt:            time.Now(),
			UpdatedAt:            time.Now(),
		}
		if err := userRepo.CreateUser(ctx, newAdmin); err != nil {
			log.Printf("❌ Failed to save admin user: %v\n", err)
		} else {
			fmt.Printf("✔ Admin user (%s) added.\n", newAdmin.Email)
		}
	}

	if len(locations) == 0 {
		log.Println("⚠️ No locations available, skipping employee seeding.")
		return
	}

	firstNames := []string{"Budi", "Siti", "Agus", "Dewi", "Joko", "Rina", "Andi", "Maya", "Fajar", "Putri"}
	lastNames := []string{"Santoso", "Wijaya", "Putra", "Utami", "Nugroho", "Lestari", "Setiawan", "Hartono", "Gunawan", "Hidayat"}
	shifts := [][2]string{
		{"09:00 AM", "06:00 PM"},
		{"08:00 AM", "05:00 PM"},
		{"10:00 PM", "06:00 AM"},
	}

	log.Println("🔄 Adding 10 employees...")
	for i := 1; i <= 10; i++ {
		email := fmt.Sprintf("employee%02d@inout.local", i)
		existing, err := userRepo.FindUserByEmail(ctx, email)
		if err == nil && existing != nil {
			fmt.Printf("Skipping: user %s already exists.\n", email)
			continue
		}

		fullName := fmt.Sprintf("%s %s", firstNames[rand.Intn(len(firstNames))], lastNames[rand.Intn(len(lastNames))])
		location := locations[rand.Intn(len(locations))]
		shift := shifts[rand.Intn(len(shifts))]

		employee := &models.User{
			UID:                  uuid.NewString(),
			Name:                 fullName,
			Email:                email,
			Password:             string(hashedPassword),
			Role:                 "employee",
			Approved:             true,
			EmployeeID:           fmt.Sprintf("EMP%03d", i),
			AssignedLocationID:   location.ID,
			IsTraveling:          i == 10, // one field worker
			ShiftStartTime:       shift[0],
			ShiftEndTime:         shift[1],
			EmergencyLeaveStatus: models.LeaveStatusNone,
			MedicalLeaveStatus:   models.LeaveStatusNone,
			MedicalLeaveType:     models.MedicalLeaveNone,
			CreatedAt:            time.Now(),
			UpdatedAt:            time.Now(),
		}

		if err := userRepo.CreateUser(ctx, employee); err != nil {
			log.Printf("❌ Failed to save user %s: %v\n", employee.Name, err)
		} else {
			fmt.Printf("✔ Employee %s (%s @ %s) added.\n", employee.Name, employee.EmployeeID, location.Name)
		}
	}

	log.Println("✅ User seeding done.")
}
