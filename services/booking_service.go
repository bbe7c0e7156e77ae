package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Overridable in tests that exercise the 24-hour cancellation boundary.
var timeNow = time.Now

const cancellationNotice = 24 * time.Hour

type CreateSessionInput struct {
	TutorID   uuid.UUID
	Date      time.Time
	StartTime string
	Duration  int
	Subject   string
	Location  string
	Notes     string
}

// CreateSession books a pending session for the student. The tutor must be
// accepting bookings, the student cannot book themselves, and the requested
// interval must not overlap another pending or confirmed session for the
// tutor on that date. Advertised weekly hours are advisory only and never
// block creation. Amount is fixed here from the tutor's current hourly rate
// and is not recomputed on later edits.
func CreateSession(studentID uuid.UUID, in CreateSessionInput) (*models.Session, error) {
	startTime, endTime, err := normalizeInterval(in.StartTime, in.Duration)
	if err != nil {
		return nil, err
	}
	date := dateOnly(in.Date)

	var session models.Session
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var tutor models.Tutor
		if err := tx.First(&tutor, "user_id = ?", in.TutorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: tutor", ErrNotFound)
			}
			return err
		}

		if tutor.UserID == studentID {
			return fmt.Errorf("%w: you cannot book a session with yourself", ErrForbidden)
		}
		if !tutor.IsAvailable {
			return fmt.Errorf("%w: tutor is not accepting bookings", ErrValidation)
		}

		conflict, err := HasSessionConflict(tx, tutor.UserID, date, startTime, endTime, nil)
		if err != nil {
			return err
		}
		if conflict {
			return fmt.Errorf("%w: tutor already has a session in that time range", ErrSchedulingConflict)
		}

		session = models.Session{
			TutorID:   tutor.UserID,
			StudentID: studentID,
			Date:      date,
			StartTime: startTime,
			EndTime:   endTime,
			Duration:  in.Duration,
			Subject:   in.Subject,
			Location:  in.Location,
			Notes:     in.Notes,
			Status:    models.SessionStatusPending,
			Amount:    round2(tutor.HourlyRate / 60 * float64(in.Duration)),
		}
		if err := tx.Create(&session).Error; err != nil {
			// Two requests can pass the conflict check together; the unique
			// index rejects the second writer.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: that slot was just taken", ErrSchedulingConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	Notify(session.TutorID, models.NotificationTypeBooking,
		"New session request",
		fmt.Sprintf("You have a new %s session request on %s at %s.", session.Subject, date.Format("2006-01-02"), session.StartTime),
		fmt.Sprintf("/tutoring/sessions/%s/", session.ID))

	return &session, nil
}

// ConfirmSession moves a pending session to confirmed. Only the tutor may
// confirm. Confirming an already-confirmed session is an idempotent no-op.
func ConfirmSession(actorID, sessionID uuid.UUID) (*models.Session, error) {
	var session models.Session
	alreadyConfirmed := false

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: session", ErrNotFound)
			}
			return err
		}
		if session.TutorID != actorID {
			return fmt.Errorf("%w: only the tutor can confirm a session", ErrForbidden)
		}

		switch session.Status {
		case models.SessionStatusConfirmed:
			alreadyConfirmed = true
			return nil
		case models.SessionStatusPending:
		default:
			return fmt.Errorf("%w: cannot confirm a %s session", ErrInvalidTransition, session.Status)
		}

		now := timeNow()
		session.Status = models.SessionStatusConfirmed
		session.ConfirmedAt = &now
		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, err
	}

	if !alreadyConfirmed {
		Notify(session.StudentID, models.NotificationTypeBooking,
			"Session confirmed",
			fmt.Sprintf("Your %s session on %s at %s has been confirmed.", session.Subject, session.Date.Format("2006-01-02"), session.StartTime),
			fmt.Sprintf("/tutoring/sessions/%s/", session.ID))
	}
	return &session, nil
}

// CompleteSession marks a session as completed and, exactly once, credits
// the tutor's totals: total_sessions by 1 and total_hours by duration/60.
// Both pending and confirmed sessions may be completed; skipping the
// confirmation step is tutor discretion.
func CompleteSession(actorID, sessionID uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: session", ErrNotFound)
			}
			return err
		}
		if session.TutorID != actorID {
			return fmt.Errorf("%w: only the tutor can complete a session", ErrForbidden)
		}

		switch session.Status {
		case models.SessionStatusPending, models.SessionStatusConfirmed:
		default:
			return fmt.Errorf("%w: cannot complete a %s session", ErrInvalidTransition, session.Status)
		}

		now := timeNow()
		session.Status = models.SessionStatusCompleted
		session.CompletedAt = &now
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		// The status guard above makes this increment run once per session;
		// a repeat call fails before reaching it.
		return tx.Model(&models.Tutor{}).Where("user_id = ?", session.TutorID).
			Updates(map[string]interface{}{
				"total_sessions": gorm.Expr("total_sessions + 1"),
				"total_hours":    gorm.Expr("total_hours + ?", float64(session.Duration)/60),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	Notify(session.StudentID, models.NotificationTypeBooking,
		"Session completed",
		fmt.Sprintf("Your %s session has been marked as completed. You can now leave a review.", session.Subject),
		fmt.Sprintf("/tutoring/%s/", session.TutorID))

	return &session, nil
}

// CancelSession cancels a pending or confirmed session. Either party may
// cancel, but only up to 24 hours before the session's start instant;
// exactly 24 hours before still succeeds.
func CancelSession(actorID, sessionID uuid.UUID) (*models.Session, error) {
	var session models.Session
	var counterparty uuid.UUID

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: session", ErrNotFound)
			}
			return err
		}

		switch actorID {
		case session.StudentID:
			counterparty = session.TutorID
		case session.TutorID:
			counterparty = session.StudentID
		default:
			return fmt.Errorf("%w: this is not your session", ErrForbidden)
		}

		switch session.Status {
		case models.SessionStatusPending, models.SessionStatusConfirmed:
		default:
			return fmt.Errorf("%w: cannot cancel a %s session", ErrInvalidTransition, session.Status)
		}

		if timeNow().Add(cancellationNotice).After(session.StartInstant()) {
			return fmt.Errorf("%w: sessions must be cancelled at least 24 hours before they start", ErrValidation)
		}

		now := timeNow()
		session.Status = models.SessionStatusCancelled
		session.CancelledAt = &now
		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, err
	}

	Notify(counterparty, models.NotificationTypeBooking,
		"Session cancelled",
		fmt.Sprintf("The %s session on %s at %s has been cancelled.", session.Subject, session.Date.Format("2006-01-02"), session.StartTime),
		fmt.Sprintf("/tutoring/sessions/%s/", session.ID))

	return &session, nil
}

// normalizeInterval validates the "15:04" start time and positive duration,
// and derives the end time. Sessions must end on the same calendar day.
func normalizeInterval(startTime string, duration int) (string, string, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: start time must be in HH:MM format", ErrValidation)
	}
	if duration <= 0 {
		return "", "", fmt.Errorf("%w: duration must be positive", ErrValidation)
	}

	startMinutes := start.Hour()*60 + start.Minute()
	endMinutes := startMinutes + duration
	if endMinutes > 24*60 {
		return "", "", fmt.Errorf("%w: session must end on the same day", ErrValidation)
	}

	// A session ending at midnight formats as "24:00" so the string
	// comparison in the overlap test stays ordered.
	return start.Format("15:04"), fmt.Sprintf("%02d:%02d", endMinutes/60, endMinutes%60), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
