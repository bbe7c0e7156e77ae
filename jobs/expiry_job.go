package jobs

import (
	"log"
	"time"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/omondi254/campus_hub/services"
)

// ExpireStalePendingSessions cancels pending sessions whose start time has
// passed without the tutor confirming. The slot opens up again because the
// conflict check only counts pending and confirmed sessions.
func ExpireStalePendingSessions() {
	log.Println("Running job: ExpireStalePendingSessions...")

	now := time.Now()

	var staleSessions []models.Session
	err := database.DB.
		Where("status = ? AND date <= ?", models.SessionStatusPending, dateOnly(now)).
		Find(&staleSessions).Error
	if err != nil {
		log.Printf("Error checking for stale pending sessions: %v", err)
		return
	}

	for _, session := range staleSessions {
		if session.StartInstant().After(now) {
			continue
		}

		cancelledAt := now
		session.Status = models.SessionStatusCancelled
		session.CancelledAt = &cancelledAt
		if err := database.DB.Save(&session).Error; err != nil {
			log.Printf("Failed to expire session %s: %v", session.ID, err)
			continue
		}

		log.Printf("Expired unconfirmed session %s", session.ID)
		services.Notify(session.StudentID, models.NotificationTypeBooking,
			"Session request expired",
			"Your session request was not confirmed in time and has been cancelled.",
			"/tutoring/")
	}
}
