package services

import (
	"errors"
	"fmt"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewInput struct {
	Rating        int
	Knowledge     int
	Communication int
	Punctuality   int
	Helpfulness   int
	Comment       string
}

// UpsertTutorReview creates the student's review for the tutor, or updates
// the existing one; a student never gets two rows for the same tutor. The
// review is marked verified when a completed session links the two parties,
// and the tutor's aggregate rating is recomputed inside the same
// transaction so it is never stale relative to the review set.
func UpsertTutorReview(studentID, tutorID uuid.UUID, in ReviewInput) (*models.TutorReview, error) {
	var review models.TutorReview
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var tutor models.Tutor
		if err := tx.First(&tutor, "user_id = ?", tutorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: tutor", ErrNotFound)
			}
			return err
		}
		if tutor.UserID == studentID {
			return fmt.Errorf("%w: you cannot review yourself", ErrForbidden)
		}

		var completedSessions int64
		if err := tx.Model(&models.Session{}).
			Where("tutor_id = ? AND student_id = ? AND status = ?", tutorID, studentID, models.SessionStatusCompleted).
			Count(&completedSessions).Error; err != nil {
			return err
		}

		err := tx.Where("tutor_id = ? AND student_id = ?", tutorID, studentID).First(&review).Error
		switch {
		case err == nil:
		case errors.Is(err, gorm.ErrRecordNotFound):
			review = models.TutorReview{TutorID: tutorID, StudentID: studentID}
		default:
			return err
		}

		review.Rating = in.Rating
		review.Knowledge = in.Knowledge
		review.Communication = in.Communication
		review.Punctuality = in.Punctuality
		review.Helpfulness = in.Helpfulness
		review.Comment = in.Comment
		review.IsVerified = completedSessions > 0

		if err := tx.Save(&review).Error; err != nil {
			return err
		}

		return recomputeTutorRating(tx, tutorID)
	})
	if err != nil {
		return nil, err
	}

	Notify(tutorID, models.NotificationTypeReview,
		"New review received",
		fmt.Sprintf("A student rated you %d/5.", review.Rating),
		fmt.Sprintf("/tutoring/%s/", tutorID))

	return &review, nil
}

// DeleteTutorReview removes the student's review and recomputes the
// aggregate in the same transaction.
func DeleteTutorReview(studentID, tutorID uuid.UUID) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("tutor_id = ? AND student_id = ?", tutorID, studentID).Delete(&models.TutorReview{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: review", ErrNotFound)
		}
		return recomputeTutorRating(tx, tutorID)
	})
}

// recomputeTutorRating persists the arithmetic mean of all current review
// ratings, rounded to 2 decimal places, together with the review count.
// 0.0 when no reviews exist.
func recomputeTutorRating(tx *gorm.DB, tutorID uuid.UUID) error {
	var result struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&models.TutorReview{}).
		Where("tutor_id = ?", tutorID).
		Select("coalesce(avg(rating), 0) as avg, count(*) as count").
		Scan(&result).Error
	if err != nil {
		return err
	}

	return tx.Model(&models.Tutor{}).Where("user_id = ?", tutorID).
		Updates(map[string]interface{}{
			"rating":        round2(result.Avg),
			"total_reviews": result.Count,
		}).Error
}
