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

func TestCreateSessionComputesAmountFromHourlyRate(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Amina Yusuf")

	session, err := CreateSession(student.ID, CreateSessionInput{
		TutorID:   tutor.UserID,
		Date:      futureDate(7),
		StartTime: "10:00",
		Duration:  90,
		Subject:   "mathematics",
		Location:  "Library Room 2",
	})
	require.NoError(t, err)

	assert.Equal(t, models.SessionStatusPending, session.Status)
	assert.Equal(t, 30.00, session.Amount)
	assert.Equal(t, "10:00", session.StartTime)
	assert.Equal(t, "11:30", session.EndTime)

	var notifications []models.Notification
	database.DB.Where("user_id = ?", tutor.UserID).Find(&notifications)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeBooking, notifications[0].NotificationType)
}

func TestCreateSessionRejectsUnavailableTutor(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 15.00)
	tutor.IsAvailable = false
	require.NoError(t, database.DB.Save(&tutor).Error)
	student := createTestUser(t, "Brian Otieno")

	_, err := CreateSession(student.ID, CreateSessionInput{
		TutorID:   tutor.UserID,
		Date:      futureDate(7),
		StartTime: "10:00",
		Duration:  60,
		Subject:   "physics",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateSessionRejectsSelfBooking(t *testing.T) {
	setupTestDB(t)
	tutorUser, tutor := createTestTutor(t, 15.00)

	_, err := CreateSession(tutorUser.ID, CreateSessionInput{
		TutorID:   tutor.UserID,
		Date:      futureDate(7),
		StartTime: "10:00",
		Duration:  60,
		Subject:   "physics",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateSessionRejectsOverlap(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 15.00)
	first := createTestUser(t, "First Student")
	second := createTestUser(t, "Second Student")
	date := futureDate(7)

	_, err := CreateSession(first.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: date, StartTime: "10:00", Duration: 60, Subject: "physics",
	})
	require.NoError(t, err)

	// Overlapping interval fails.
	_, err = CreateSession(second.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: date, StartTime: "10:30", Duration: 60, Subject: "physics",
	})
	assert.ErrorIs(t, err, ErrSchedulingConflict)

	// Touching endpoints do not conflict.
	_, err = CreateSession(second.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: date, StartTime: "11:00", Duration: 60, Subject: "physics",
	})
	assert.NoError(t, err)

	// Same slot on another date is free.
	_, err = CreateSession(second.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: futureDate(8), StartTime: "10:00", Duration: 60, Subject: "physics",
	})
	assert.NoError(t, err)
}

func TestCancelledSessionDoesNotBlockSlot(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 15.00)
	student := createTestUser(t, "Wanjiku Kamau")
	date := futureDate(7)

	session, err := CreateSession(student.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: date, StartTime: "10:00", Duration: 60, Subject: "physics",
	})
	require.NoError(t, err)

	_, err = CancelSession(student.ID, session.ID)
	require.NoError(t, err)

	_, err = CreateSession(student.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: date, StartTime: "10:00", Duration: 60, Subject: "physics",
	})
	assert.NoError(t, err)
}

func TestConfirmSessionTutorOnlyAndIdempotent(t *testing.T) {
	setupTestDB(t)
	tutorUser, tutor := createTestTutor(t, 15.00)
	student := createTestUser(t, "Amina Yusuf")

	session, err := CreateSession(student.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: futureDate(7), StartTime: "10:00", Duration: 60, Subject: "physics",
	})
	require.NoError(t, err)

	_, err = ConfirmSession(student.ID, session.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	confirmed, err := ConfirmSession(tutorUser.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.ConfirmedAt)
	firstConfirmedAt := *confirmed.ConfirmedAt

	// Re-confirming is a no-op and keeps the original timestamp.
	again, err := ConfirmSession(tutorUser.ID, session.ID)
	require.NoError(t, err)
	require.NotNil(t, again.ConfirmedAt)
	assert.True(t, firstConfirmedAt.Equal(*again.ConfirmedAt))

	var notifications int64
	database.DB.Model(&models.Notification{}).Where("user_id = ?", student.ID).Count(&notifications)
	assert.EqualValues(t, 1, notifications)
}

func TestCompleteSessionIncrementsTutorTotalsOnce(t *testing.T) {
	setupTestDB(t)
	tutorUser, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Amina Yusuf")

	session, err := CreateSession(student.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: futureDate(7), StartTime: "10:00", Duration: 90, Subject: "mathematics",
	})
	require.NoError(t, err)

	_, err = ConfirmSession(tutorUser.ID, session.ID)
	require.NoError(t, err)

	completed, err := CompleteSession(tutorUser.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	var updated models.Tutor
	require.NoError(t, database.DB.First(&updated, "user_id = ?", tutor.UserID).Error)
	assert.Equal(t, 1, updated.TotalSessions)
	assert.InDelta(t, 1.5, updated.TotalHours, 0.001)

	// A second completion fails and must not double-count.
	_, err = CompleteSession(tutorUser.ID, session.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, database.DB.First(&updated, "user_id = ?", tutor.UserID).Error)
	assert.Equal(t, 1, updated.TotalSessions)
	assert.InDelta(t, 1.5, updated.TotalHours, 0.001)
}

func TestCompleteSessionAllowedDirectlyFromPending(t *testing.T) {
	setupTestDB(t)
	tutorUser, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Brian Otieno")

	session, err := CreateSession(student.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: futureDate(7), StartTime: "14:00", Duration: 60, Subject: "physics",
	})
	require.NoError(t, err)

	completed, err := CompleteSession(tutorUser.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusCompleted, completed.Status)
}

func TestCompleteSessionStudentForbidden(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Brian Otieno")

	session, err := CreateSession(student.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: futureDate(7), StartTime: "14:00", Duration: 60, Subject: "physics",
	})
	require.NoError(t, err)

	_, err = CompleteSession(student.ID, session.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancelSessionTwentyFourHourBoundary(t *testing.T) {
	setupTestDB(t)
	tutorUser, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Amina Yusuf")

	session, err := CreateSession(student.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: futureDate(10), StartTime: "10:00", Duration: 60, Subject: "mathematics",
	})
	require.NoError(t, err)
	start := session.StartInstant()

	defer func() { timeNow = time.Now }()

	// 23h59m before the start is inside the window and must fail.
	timeNow = func() time.Time { return start.Add(-24*time.Hour + time.Minute) }
	_, err = CancelSession(student.ID, session.ID)
	assert.ErrorIs(t, err, ErrValidation)

	// Exactly 24h before the start still succeeds.
	timeNow = func() time.Time { return start.Add(-24 * time.Hour) }
	cancelled, err := CancelSession(student.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	// Terminal state: the tutor cannot cancel it again.
	_, err = CancelSession(tutorUser.ID, session.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelSessionByTutorNotifiesStudent(t *testing.T) {
	setupTestDB(t)
	tutorUser, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Amina Yusuf")

	session, err := CreateSession(student.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: futureDate(10), StartTime: "10:00", Duration: 60, Subject: "mathematics",
	})
	require.NoError(t, err)

	_, err = CancelSession(tutorUser.ID, session.ID)
	require.NoError(t, err)

	var notifications []models.Notification
	database.DB.Where("user_id = ? AND notification_type = ?", student.ID, models.NotificationTypeBooking).Find(&notifications)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Title, "cancelled")
}

func TestCancelSessionStrangerForbidden(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Amina Yusuf")
	stranger := createTestUser(t, "Someone Else")

	session, err := CreateSession(student.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: futureDate(10), StartTime: "10:00", Duration: 60, Subject: "mathematics",
	})
	require.NoError(t, err)

	_, err = CancelSession(stranger.ID, session.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSessionOperationsOnMissingRecords(t *testing.T) {
	setupTestDB(t)
	student := createTestUser(t, "Amina Yusuf")

	_, err := CreateSession(student.ID, CreateSessionInput{
		TutorID: uuid.New(), Date: futureDate(7), StartTime: "10:00", Duration: 60, Subject: "physics",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ConfirmSession(student.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = CompleteSession(student.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = CancelSession(student.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateSessionRejectsMalformedTimes(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Amina Yusuf")

	cases := []struct {
		name      string
		startTime string
		duration  int
	}{
		{"bad format", "25:99", 60},
		{"empty start", "", 60},
		{"zero duration", "10:00", 0},
		{"negative duration", "10:00", -30},
		{"runs past midnight", "23:30", 60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateSession(student.ID, CreateSessionInput{
				TutorID: tutor.UserID, Date: futureDate(7), StartTime: tc.startTime, Duration: tc.duration, Subject: "physics",
			})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
