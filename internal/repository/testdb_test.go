package repository

import (
	"fmt"
	"strings"
	"testing"

	"agrivision/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database per test and migrates the
// full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Activity{},
		&models.Suggestion{},
		&models.CarbonPractice{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createProfile(t *testing.T, db *gorm.DB, userID uint, credits float64) *models.UserProfile {
	t.Helper()

	profile := &models.UserProfile{
		UserID:             userID,
		FullName:           fmt.Sprintf("Farmer %d", userID),
		TotalCarbonCredits: credits,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return profile
}

func createApprovedActivity(t *testing.T, db *gorm.DB, userID uint, credits float64) *models.Activity {
	t.Helper()

	activity := &models.Activity{
		UserID:                userID,
		ActivityType:          "Zero Tillage",
		Status:                models.ActivityStatusApproved,
		CalculatedCredits:     &credits,
		ClimateImpactAnalysis: "Zero tillage preserves soil carbon.",
	}
	if err := db.Create(activity).Error; err != nil {
		t.Fatalf("failed to create activity: %v", err)
	}
	return activity
}
