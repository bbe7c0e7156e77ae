package services

import (
	"testing"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHasSessionConflictHalfOpenIntervals(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Amina Yusuf")
	date := futureDate(5)

	existing := models.Session{
		TutorID: tutor.UserID, StudentID: student.ID,
		Date: date, StartTime: "10:00", EndTime: "11:00", Duration: 60,
		Subject: "physics", Status: models.SessionStatusConfirmed, Amount: 20,
	}
	require.NoError(t, database.DB.Create(&existing).Error)

	cases := []struct {
		name     string
		start    string
		end      string
		conflict bool
	}{
		{"identical interval", "10:00", "11:00", true},
		{"overlaps start", "09:30", "10:30", true},
		{"overlaps end", "10:30", "11:30", true},
		{"contained", "10:15", "10:45", true},
		{"contains", "09:00", "12:00", true},
		{"touches end", "11:00", "12:00", false},
		{"touches start", "09:00", "10:00", false},
		{"disjoint", "12:00", "13:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conflict, err := HasSessionConflict(database.DB, tutor.UserID, date, tc.start, tc.end, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.conflict, conflict)
		})
	}
}

func TestHasSessionConflictIgnoresInactiveStatuses(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Amina Yusuf")
	date := futureDate(5)

	for _, status := range []string{models.SessionStatusCancelled, models.SessionStatusCompleted} {
		session := models.Session{
			TutorID: tutor.UserID, StudentID: student.ID,
			Date: date, StartTime: "10:00", EndTime: "11:00", Duration: 60,
			Subject: "physics", Status: status, Amount: 20,
		}
		require.NoError(t, database.DB.Create(&session).Error)

		conflict, err := HasSessionConflict(database.DB, tutor.UserID, date, "10:00", "11:00", nil)
		require.NoError(t, err)
		assert.False(t, conflict, "status %s must not block the slot", status)

		require.NoError(t, database.DB.Delete(&session).Error)
	}
}

func TestHasSessionConflictExcludesOwnBooking(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Amina Yusuf")
	date := futureDate(5)

	session := models.Session{
		ID:      uuid.New(),
		TutorID: tutor.UserID, StudentID: student.ID,
		Date: date, StartTime: "10:00", EndTime: "11:00", Duration: 60,
		Subject: "physics", Status: models.SessionStatusPending, Amount: 20,
	}
	require.NoError(t, database.DB.Create(&session).Error)

	// Re-saving the same booking must not conflict with itself.
	conflict, err := HasSessionConflict(database.DB, tutor.UserID, date, "10:00", "11:00", &session.ID)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestUniqueSlotIndexRejectsSecondWriter(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)
	first := createTestUser(t, "First")
	second := createTestUser(t, "Second")
	date := futureDate(5)

	a := models.Session{
		TutorID: tutor.UserID, StudentID: first.ID,
		Date: date, StartTime: "10:00", EndTime: "11:00", Duration: 60,
		Subject: "physics", Status: models.SessionStatusPending, Amount: 20,
	}
	require.NoError(t, database.DB.Create(&a).Error)

	// Simulates the race where both requests passed the conflict check:
	// the insert itself must fail on the unique index.
	b := models.Session{
		TutorID: tutor.UserID, StudentID: second.ID,
		Date: date, StartTime: "10:00", EndTime: "11:00", Duration: 60,
		Subject: "physics", Status: models.SessionStatusPending, Amount: 20,
	}
	err := database.DB.Create(&b).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
