package repository

import (
	"fmt"
	"testing"
	"time"

	"femcare/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// An in-memory sqlite database lives per connection; keep the pool at
	// one so every query sees the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MenstruationPeriod{},
		&models.FeminineHealthWorkerGroup{},
	))
	return db
}

var testUserSeq int

func createTestUser(t *testing.T, db *gorm.DB, role models.Role, lastName string, active bool) *models.User {
	t.Helper()

	testUserSeq++
	email := fmt.Sprintf("user%d@example.com", testUserSeq)
	user := &models.User{
		Role:      role,
		FirstName: "Test",
		LastName:  lastName,
		Email:     &email,
		Password:  "irrelevant",
		IsActive:  active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPeriod(t *testing.T, db *gorm.DB, userID uint, date time.Time, seen bool) *models.MenstruationPeriod {
	t.Helper()

	period := &models.MenstruationPeriod{
		UserID:           userID,
		MenstruationDate: date,
		IsSeen:           seen,
	}
	require.NoError(t, db.Create(period).Error)
	return period
}
