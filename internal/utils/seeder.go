package utils

import (
	"fmt"
	"log"
	mathrand "math/rand"
	"os"
	"time"

	"femcare/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultNumFeminine = 25

func connectToSeedDatabase() (*gorm.DB, error) {
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "femcare")
	dbSSLMode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Manila",
		dbHost, dbUser, dbPassword, dbName, dbPort, dbSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")
	return db, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// SeedAdmin creates the portal admin account if it does not exist yet.
func SeedAdmin(email, password string) error {
	db, err := connectToSeedDatabase()
	if err != nil {
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Role:       models.RoleAdmin,
		FirstName:  "Portal",
		LastName:   "Admin",
		Email:      &email,
		Password:   hash,
		IsActive:   true,
		IsVerified: true,
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin)
	if result.Error != nil {
		return fmt.Errorf("failed to seed admin: %v", result.Error)
	}

	log.Printf("✅ Admin account ready (%s)", email)
	return nil
}

// SeedDemoData fills the database with feminine users, health workers,
// period entries and a few assignments for local development.
func SeedDemoData(numFeminine, numWorkers int) error {
	db, err := connectToSeedDatabase()
	if err != nil {
		return err
	}

	hash, err := HashPassword("TestPassword123!")
	if err != nil {
		return err
	}

	rng := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))

	workers := make([]models.User, 0, numWorkers)
	for i := 0; i < numWorkers; i++ {
		email := fmt.Sprintf("worker%d@example.com", i+1)
		workers = append(workers, models.User{
			Role:      models.RoleHealthWorker,
			FirstName: fmt.Sprintf("Worker%d", i+1),
			LastName:  fmt.Sprintf("Seed%d", i+1),
			Email:     &email,
			Password:  hash,
			IsActive:  true,
		})
	}
	if len(workers) > 0 {
		if err := db.Create(&workers).Error; err != nil {
			return fmt.Errorf("failed to seed health workers: %v", err)
		}
	}

	feminine := make([]models.User, 0, numFeminine)
	for i := 0; i < numFeminine; i++ {
		email := fmt.Sprintf("feminine%d@example.com", i+1)
		status := rng.Intn(2) == 0
		active := i%5 != 0 // leave some accounts pending verification
		feminine = append(feminine, models.User{
			Role:               models.RoleFeminine,
			FirstName:          fmt.Sprintf("Feminine%d", i+1),
			LastName:           fmt.Sprintf("Seed%d", i+1),
			Email:              &email,
			Password:           hash,
			MenstruationStatus: &status,
			IsActive:           active,
		})
	}
	if len(feminine) > 0 {
		if err := db.Create(&feminine).Error; err != nil {
			return fmt.Errorf("failed to seed feminine users: %v", err)
		}
	}

	periods := make([]models.MenstruationPeriod, 0, numFeminine*2)
	for _, user := range feminine {
		for j := 0; j < 1+rng.Intn(3); j++ {
			periods = append(periods, models.MenstruationPeriod{
				UserID:           user.ID,
				MenstruationDate: time.Now().AddDate(0, -j, -rng.Intn(28)),
			})
		}
	}
	if len(periods) > 0 {
		if err := db.Create(&periods).Error; err != nil {
			return fmt.Errorf("failed to seed period entries: %v", err)
		}
	}

	links := make([]models.FeminineHealthWorkerGroup, 0, numFeminine)
	for i, user := range feminine {
		if !user.IsActive || len(workers) == 0 {
			continue
		}
		links = append(links, models.FeminineHealthWorkerGroup{
			FeminineID:     user.ID,
			HealthWorkerID: workers[i%len(workers)].ID,
		})
	}
	if len(links) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
			return fmt.Errorf("failed to seed assignments: %v", err)
		}
	}

	log.Printf("✅ Seeded %d feminine users, %d health workers, %d periods, %d assignments",
		len(feminine), len(workers), len(periods), len(links))
	return nil
}

// CleanupDemoData deletes seeded records so the seeder can run again.
func CleanupDemoData() error {
	db, err := connectToSeedDatabase()
	if err != nil {
		return err
	}

	var seeded []models.User
	if err := db.Where("email LIKE ? OR email LIKE ?", "feminine%@example.com", "worker%@example.com").
		Find(&seeded).Error; err != nil {
		return err
	}

	for _, user := range seeded {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.MenstruationPeriod{}).Error; err != nil {
				return err
			}
			if err := tx.Where("feminine_id = ? OR health_worker_id = ?", user.ID, user.ID).
				Delete(&models.FeminineHealthWorkerGroup{}).Error; err != nil {
				return err
			}
			return tx.Delete(&user).Error
		})
		if err != nil {
			return fmt.Errorf("failed to cleanup seeded users: %v", err)
		}
	}

	log.Printf("✅ Deleted %d seeded users", len(seeded))
	return nil
}
