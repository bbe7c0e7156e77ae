package services

import (
	"time"

	"github.com/omondi254/campus_hub/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HasSessionConflict reports whether any pending or confirmed session for
// the tutor on the given date overlaps [startTime, endTime). Touching
// endpoints do not conflict. excludeID skips the session being re-saved.
//
// The check runs without a lock; two concurrent requests can both pass it.
// The partial unique index on (tutor_id, date, start_time) rejects the
// second writer at insert time.
func HasSessionConflict(tx *gorm.DB, tutorID uuid.UUID, date time.Time, startTime, endTime string, excludeID *uuid.UUID) (bool, error) {
	query := tx.Model(&models.Session{}).
		Where("tutor_id = ? AND date = ? AND status IN ?", tutorID, date, []string{models.SessionStatusPending, models.SessionStatusConfirmed}).
		Where("start_time < ? AND end_time > ?", endTime, startTime)

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
