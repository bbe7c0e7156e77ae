package services

import (
	"testing"
	"time"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps the package-global connection for a fresh in-memory
// SQLite database so each test starts from an empty schema.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Badge{},
		&models.Notification{},
		&models.Message{},
		&models.Tutor{},
		&models.TutorAvailability{},
		&models.Session{},
		&models.TutorReview{},
		&models.Certificate{},
		&models.LostItem{},
		&models.FoundItem{},
		&models.Job{},
		&models.JobApplication{},
		&models.Resource{},
		&models.ResourceReview{},
		&models.Service{},
		&models.ServiceReview{},
	)
	require.NoError(t, err, "failed to migrate test database")

	database.DB = db
}

func createTestUser(t *testing.T, fullName string) models.User {
	t.Helper()

	user := models.User{
		ID:         uuid.New(),
		FullName:   fullName,
		Email:      uuid.New().String() + "@campus.test",
		Password:   "hashed",
		Role:       "student",
		IsVerified: true,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createTestTutor(t *testing.T, hourlyRate float64) (models.User, models.Tutor) {
	t.Helper()

	user := createTestUser(t, "Tutor "+uuid.New().String()[:8])
	user.Role = "tutor"
	require.NoError(t, database.DB.Save(&user).Error)

	tutor := models.Tutor{
		UserID:         user.ID,
		Subjects:       "mathematics, physics",
		PrimarySubject: "mathematics",
		YearOfStudy:    "senior",
		HourlyRate:     hourlyRate,
		Bio:            "Patient tutor with three years of experience.",
		IsAvailable:    true,
	}
	require.NoError(t, database.DB.Create(&tutor).Error)
	return user, tutor
}

func futureDate(daysAhead int) time.Time {
	d := time.Now().AddDate(0, 0, daysAhead)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
