package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/omondi254/campus_hub/notifications"
	"github.com/omondi254/campus_hub/services"
)

// SendSessionReminders nudges both parties of every confirmed session that
// starts roughly an hour from now. Runs every 5 minutes, so the window is 5
// minutes wide to hit each session exactly once.
func SendSessionReminders() {
	log.Println("Running job: SendSessionReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingSessions []models.Session
	err := database.DB.
		Preload("Student").
		Preload("Tutor.User").
		Where("status = ? AND date = ?", models.SessionStatusConfirmed, dateOnly(lowerBound)).
		Find(&upcomingSessions).Error
	if err != nil {
		log.Printf("Error checking for upcoming sessions: %v", err)
		return
	}

	for _, session := range upcomingSessions {
		start := session.StartInstant()
		if start.Before(lowerBound) || !start.Before(upperBound) {
			continue
		}

		log.Printf("Sending reminder for session ID: %s", session.ID)

		emailSubject := "Reminder: Your Session Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Session Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that your %s session is scheduled to start in one hour at %s.</p><p><b>Location:</b> %s</p>",
			session.Subject, session.StartTime, session.Location,
		)

		go notifications.SendEmail(session.Student.FullName, session.Student.Email, emailSubject, emailBody)
		go notifications.SendEmail(session.Tutor.User.FullName, session.Tutor.User.Email, emailSubject, emailBody)

		services.Notify(session.StudentID, models.NotificationTypeBooking,
			"Session starting soon",
			fmt.Sprintf("Your %s session starts at %s.", session.Subject, session.StartTime),
			fmt.Sprintf("/tutoring/sessions/%s/", session.ID))
		services.Notify(session.TutorID, models.NotificationTypeBooking,
			"Session starting soon",
			fmt.Sprintf("Your %s session starts at %s.", session.Subject, session.StartTime),
			fmt.Sprintf("/tutoring/sessions/%s/", session.ID))
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
