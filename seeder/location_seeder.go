package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/repository"
)

// SeedLocations creates the sample office geofences and returns them so
// the user seeder can assign employees to them.
func SeedLocations(locationRepo repository.LocationRepository) []models.CompanyConfig {
	log.Println("🌱 Seeding office locations...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := locationRepo.FindAllLocations(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to list locations: %v", err)
	}
	if len(existing) > 0 {
		log.Println("✅ Locations already present, skipping location seeding.")
		return existing
	}

	samples := []models.CompanyConfig{
		{Name: "Head Office Jakarta", Latitude: -6.2088, Longitude: 106.8456, Radius: models.DefaultLocationRadius},
		{Name: "Bandung Branch", Latitude: -6.9175, Longitude: 107.6191, Radius: 150},
		{Name: "Surabaya Warehouse", Latitude: -7.2575, Longitude: 112.7521, Radius: 250},
	}

	seeded := make([]models.CompanyConfig, 0, len(samples))
	for _, sample := range samples {
		loc := sample
		loc.ID = uuid.NewString()
		loc.CreatedAt = time.Now()
		loc.UpdatedAt = time.Now()

		if err := locationRepo.CreateLocation(ctx, &loc); err != nil {
			log.Printf("❌ Failed to save location %s: %v\n", loc.Name, err)
			continue
		}
		fmt.Printf("✔ Location %s added (radius %.0fm).\n", loc.Name, loc.Radius)
		seeded = append(seeded, loc)
	}

	log.Println("✅ Location seeding done.")
	return seeded
}
