package services

import (
	"testing"
	"time"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceAvailabilitySwapsWholeMapping(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)

	_, err := ReplaceAvailability(tutor.UserID, models.WeeklyHours{
		"Monday": {16, 17, 18}, "Friday": {14, 15},
	})
	require.NoError(t, err)

	// Replacing discards prior availability entirely.
	_, err = ReplaceAvailability(tutor.UserID, models.WeeklyHours{
		"Saturday": {10, 11},
	})
	require.NoError(t, err)

	var rows int64
	database.DB.Model(&models.TutorAvailability{}).Where("tutor_id = ?", tutor.UserID).Count(&rows)
	assert.EqualValues(t, 1, rows)

	var availability models.TutorAvailability
	require.NoError(t, database.DB.First(&availability, "tutor_id = ?", tutor.UserID).Error)
	assert.Empty(t, availability.Hours["Monday"])
	assert.Equal(t, []int{10, 11}, availability.Hours["Saturday"])
}

func TestReplaceAvailabilityValidation(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)

	_, err := ReplaceAvailability(tutor.UserID, models.WeeklyHours{"Funday": {10}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ReplaceAvailability(tutor.UserID, models.WeeklyHours{"Monday": {24}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ReplaceAvailability(uuid.New(), models.WeeklyHours{"Monday": {10}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsTutorAvailableMatchesWeekdayAndHour(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)

	_, err := ReplaceAvailability(tutor.UserID, models.WeeklyHours{
		"Wednesday": {16, 17},
	})
	require.NoError(t, err)

	// 2026-09-02 is a Wednesday.
	wednesday := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	thursday := wednesday.AddDate(0, 0, 1)

	available, err := IsTutorAvailable(tutor.UserID, wednesday, 16)
	require.NoError(t, err)
	assert.True(t, available)

	available, err = IsTutorAvailable(tutor.UserID, wednesday, 9)
	require.NoError(t, err)
	assert.False(t, available)

	available, err = IsTutorAvailable(tutor.UserID, thursday, 16)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestIsTutorAvailableWithoutMapping(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)

	available, err := IsTutorAvailable(tutor.UserID, time.Now(), 10)
	require.NoError(t, err)
	assert.False(t, available, "absent mapping reads as no advertised hours")
}

func TestBookingOutsideAdvertisedHoursIsAllowed(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Amina Yusuf")

	_, err := ReplaceAvailability(tutor.UserID, models.WeeklyHours{"Monday": {16}})
	require.NoError(t, err)

	// Advertised hours are advisory; a slot outside them still books.
	_, err = CreateSession(student.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: futureDate(7), StartTime: "08:00", Duration: 60, Subject: "mathematics",
	})
	assert.NoError(t, err)
}
