package services

import (
	"testing"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardPointsCreditsActionValue(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Amina Yusuf")

	AwardPoints(user.ID, "upload_resource")
	AwardPoints(user.ID, "write_review")

	var updated models.User
	require.NoError(t, database.DB.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, 25, updated.Points)
}

func TestAwardPointsUnknownActionIsNoop(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Amina Yusuf")

	AwardPoints(user.ID, "time_travel")

	var updated models.User
	require.NoError(t, database.DB.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, 0, updated.Points)
}

func TestTutorBadgeAwardedAtRatingThreshold(t *testing.T) {
	setupTestDB(t)
	tutorUser, tutor := createTestTutor(t, 20.00)

	require.NoError(t, database.DB.Model(&models.Tutor{}).
		Where("user_id = ?", tutor.UserID).
		Updates(map[string]interface{}{"rating": 4.6, "total_reviews": 3}).Error)

	AwardPoints(tutorUser.ID, "complete_session")

	var badge models.Badge
	require.NoError(t, database.DB.First(&badge, "user_id = ? AND badge_type = ?", tutorUser.ID, "tutor").Error)
	assert.Equal(t, "Top Tutor", badge.Title)

	// Re-awarding must not duplicate the badge.
	AwardPoints(tutorUser.ID, "complete_session")
	var count int64
	database.DB.Model(&models.Badge{}).Where("user_id = ? AND badge_type = ?", tutorUser.ID, "tutor").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestVerifiedBadgeAwardedOnVerification(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Amina Yusuf")

	AwardPoints(user.ID, "verify_email")

	var updated models.User
	require.NoError(t, database.DB.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, 50, updated.Points)

	var count int64
	database.DB.Model(&models.Badge{}).Where("user_id = ? AND badge_type = ?", user.ID, "verified").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestExpertBadgeAwardedAtSessionThreshold(t *testing.T) {
	setupTestDB(t)
	tutorUser, tutor := createTestTutor(t, 20.00)

	require.NoError(t, database.DB.Model(&models.Tutor{}).
		Where("user_id = ?", tutor.UserID).
		Update("total_sessions", 20).Error)

	AwardPoints(tutorUser.ID, "complete_session")

	var badge models.Badge
	err := database.DB.First(&badge, "user_id = ? AND badge_type = ?", tutorUser.ID, "expert").Error
	require.NoError(t, err)
	assert.Equal(t, "Subject Expert", badge.Title)
}

func TestExpertBadgeNotAwardedBelowThreshold(t *testing.T) {
	setupTestDB(t)
	tutorUser, tutor := createTestTutor(t, 20.00)

	require.NoError(t, database.DB.Model(&models.Tutor{}).
		Where("user_id = ?", tutor.UserID).
		Update("total_sessions", 19).Error)

	AwardPoints(tutorUser.ID, "complete_session")

	var count int64
	database.DB.Model(&models.Badge{}).Where("user_id = ? AND badge_type = ?", tutorUser.ID, "expert").Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestHelperBadgeAwardedAtResourceThreshold(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Brian Otieno")

	for i := 0; i < 10; i++ {
		resource := models.Resource{
			UserID:       user.ID,
			Title:        "Lecture notes",
			CourseCode:   "MAT 201",
			ResourceType: "notes",
			IsApproved:   true,
		}
		require.NoError(t, database.DB.Create(&resource).Error)
	}

	AwardPoints(user.ID, "upload_resource")

	var count int64
	database.DB.Model(&models.Badge{}).Where("user_id = ? AND badge_type = ?", user.ID, "helper").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLeaderboardOrdersVerifiedUsersByPoints(t *testing.T) {
	setupTestDB(t)

	low := createTestUser(t, "Low")
	high := createTestUser(t, "High")
	hidden := createTestUser(t, "Hidden")

	require.NoError(t, database.DB.Model(&models.User{}).Where("id = ?", low.ID).Update("points", 40).Error)
	require.NoError(t, database.DB.Model(&models.User{}).Where("id = ?", high.ID).Update("points", 120).Error)
	require.NoError(t, database.DB.Model(&models.User{}).Where("id = ?", hidden.ID).
		Updates(map[string]interface{}{"points": 500, "is_verified": false}).Error)

	leaderboard, err := GetLeaderboard(10)
	require.NoError(t, err)
	require.Len(t, leaderboard, 2, "unverified users stay off the leaderboard")
	assert.Equal(t, "High", leaderboard[0].FullName)
	assert.Equal(t, 120, leaderboard[0].Points)
	assert.Equal(t, "Low", leaderboard[1].FullName)
}

func TestGetUserRank(t *testing.T) {
	setupTestDB(t)

	first := createTestUser(t, "First")
	second := createTestUser(t, "Second")
	third := createTestUser(t, "Third")

	require.NoError(t, database.DB.Model(&models.User{}).Where("id = ?", first.ID).Update("points", 300).Error)
	require.NoError(t, database.DB.Model(&models.User{}).Where("id = ?", second.ID).Update("points", 150).Error)
	require.NoError(t, database.DB.Model(&models.User{}).Where("id = ?", third.ID).
		Updates(map[string]interface{}{"points": 999, "is_verified": false}).Error)

	rank, err := GetUserRank(second.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)

	rank, err = GetUserRank(first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)

	rank, err = GetUserRank(third.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, rank, "unverified users are unranked")
}
