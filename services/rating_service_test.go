package services

import (
	"testing"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertTutorReviewSecondSubmissionUpdates(t *testing.T) {
	setupTestDB(t)
	tutorUser, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Amina Yusuf")

	session, err := CreateSession(student.ID, CreateSessionInput{
		TutorID: tutor.UserID, Date: futureDate(7), StartTime: "10:00", Duration: 60, Subject: "mathematics",
	})
	require.NoError(t, err)
	_, err = CompleteSession(tutorUser.ID, session.ID)
	require.NoError(t, err)

	first, err := UpsertTutorReview(student.ID, tutor.UserID, ReviewInput{
		Rating: 4, Knowledge: 5, Communication: 4, Punctuality: 4, Helpfulness: 5,
		Comment: "Very helpful with calculus.",
	})
	require.NoError(t, err)
	assert.True(t, first.IsVerified)

	var updated models.Tutor
	require.NoError(t, database.DB.First(&updated, "user_id = ?", tutor.UserID).Error)
	assert.Equal(t, 4.0, updated.Rating)
	assert.Equal(t, 1, updated.TotalReviews)

	second, err := UpsertTutorReview(student.ID, tutor.UserID, ReviewInput{
		Rating: 2, Knowledge: 2, Communication: 2, Punctuality: 3, Helpfulness: 2,
		Comment: "Changed my mind.",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "second submission must update, not insert")

	var reviewCount int64
	database.DB.Model(&models.TutorReview{}).Where("tutor_id = ?", tutor.UserID).Count(&reviewCount)
	assert.EqualValues(t, 1, reviewCount)

	require.NoError(t, database.DB.First(&updated, "user_id = ?", tutor.UserID).Error)
	assert.Equal(t, 2.0, updated.Rating)
	assert.Equal(t, 1, updated.TotalReviews)
}

func TestRatingIsMeanOfAllReviewsRoundedToTwoPlaces(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)

	ratings := []int{5, 4, 4} // mean 4.333... -> 4.33
	for _, rating := range ratings {
		student := createTestUser(t, "Student")
		_, err := UpsertTutorReview(student.ID, tutor.UserID, ReviewInput{
			Rating: rating, Knowledge: rating, Communication: rating, Punctuality: rating, Helpfulness: rating,
		})
		require.NoError(t, err)
	}

	var updated models.Tutor
	require.NoError(t, database.DB.First(&updated, "user_id = ?", tutor.UserID).Error)
	assert.Equal(t, 4.33, updated.Rating)
	assert.Equal(t, 3, updated.TotalReviews)
}

func TestReviewWithoutCompletedSessionIsUnverified(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)
	student := createTestUser(t, "Brian Otieno")

	review, err := UpsertTutorReview(student.ID, tutor.UserID, ReviewInput{
		Rating: 3, Knowledge: 3, Communication: 3, Punctuality: 3, Helpfulness: 3,
	})
	require.NoError(t, err)
	assert.False(t, review.IsVerified)
}

func TestUpsertTutorReviewSelfReviewForbidden(t *testing.T) {
	setupTestDB(t)
	tutorUser, tutor := createTestTutor(t, 20.00)

	_, err := UpsertTutorReview(tutorUser.ID, tutor.UserID, ReviewInput{Rating: 5})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteTutorReviewRecomputesAggregate(t *testing.T) {
	setupTestDB(t)
	_, tutor := createTestTutor(t, 20.00)
	first := createTestUser(t, "First")
	second := createTestUser(t, "Second")

	_, err := UpsertTutorReview(first.ID, tutor.UserID, ReviewInput{Rating: 5})
	require.NoError(t, err)
	_, err = UpsertTutorReview(second.ID, tutor.UserID, ReviewInput{Rating: 1})
	require.NoError(t, err)

	require.NoError(t, DeleteTutorReview(second.ID, tutor.UserID))

	var updated models.Tutor
	require.NoError(t, database.DB.First(&updated, "user_id = ?", tutor.UserID).Error)
	assert.Equal(t, 5.0, updated.Rating)
	assert.Equal(t, 1, updated.TotalReviews)

	// Removing the last review resets the aggregate to zero.
	require.NoError(t, DeleteTutorReview(first.ID, tutor.UserID))
	require.NoError(t, database.DB.First(&updated, "user_id = ?", tutor.UserID).Error)
	assert.Equal(t, 0.0, updated.Rating)
	assert.Equal(t, 0, updated.TotalReviews)

	assert.ErrorIs(t, DeleteTutorReview(first.ID, tutor.UserID), ErrNotFound)
}
