package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var weekdayNames = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

// ReplaceAvailability swaps a tutor's entire weekly availability for the
// given mapping in one transaction. Partial updates are not supported.
func ReplaceAvailability(tutorID uuid.UUID, hours models.WeeklyHours) (*models.TutorAvailability, error) {
	for day, slots := range hours {
		if !weekdayNames[day] {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrValidation, day)
		}
		for _, h := range slots {
			if h < 0 || h > 23 {
				return nil, fmt.Errorf("%w: hour %d out of range", ErrValidation, h)
			}
		}
	}

	var availability models.TutorAvailability
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var tutor models.Tutor
		if err := tx.First(&tutor, "user_id = ?", tutorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: tutor", ErrNotFound)
			}
			return err
		}

		if err := tx.Where("tutor_id = ?", tutorID).Delete(&models.TutorAvailability{}).Error; err != nil {
			return err
		}

		availability = models.TutorAvailability{TutorID: tutorID, Hours: hours}
		return tx.Create(&availability).Error
	})
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

// IsTutorAvailable reports whether the weekday derived from date has the
// given hour in the tutor's advertised mapping. A missing or empty mapping
// means "no advertised hours" and reads as false; callers treat that as
// informational, not as a reason to reject a booking.
func IsTutorAvailable(tutorID uuid.UUID, date time.Time, hour int) (bool, error) {
	var availability models.TutorAvailability
	err := database.DB.Where("tutor_id = ?", tutorID).First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	for _, h := range availability.Hours[date.Weekday().String()] {
		if h == hour {
			return true, nil
		}
	}
	return false, nil
}
