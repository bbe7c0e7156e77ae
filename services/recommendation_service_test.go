package services

import (
	"testing"
	"time"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRecommendationsPreferCourseMatchedTutors(t *testing.T) {
	setupTestDB(t)

	student := createTestUser(t, "Amina Yusuf")
	student.Course = strPtr("Computer Science")
	require.NoError(t, database.DB.Save(&student).Error)

	matchUser, _ := createTestTutor(t, 20.00)
	matchUser.Course = strPtr("Computer Science")
	require.NoError(t, database.DB.Save(&matchUser).Error)

	otherUser, _ := createTestTutor(t, 25.00)
	otherUser.Course = strPtr("Economics")
	require.NoError(t, database.DB.Save(&otherUser).Error)

	recommendations := GetRecommendations(&student, 5)
	require.NotEmpty(t, recommendations)

	assert.Equal(t, "tutor", recommendations[0].Type)
	assert.Equal(t, matchUser.ID.String(), recommendations[0].ID)
	assert.Equal(t, 0.8, recommendations[0].Score)
}

func TestRecommendationsExcludeSelf(t *testing.T) {
	setupTestDB(t)

	tutorUser, _ := createTestTutor(t, 20.00)
	tutorUser.Course = strPtr("Computer Science")
	require.NoError(t, database.DB.Save(&tutorUser).Error)

	recommendations := GetRecommendations(&tutorUser, 5)
	for _, rec := range recommendations {
		if rec.Type == "tutor" {
			assert.NotEqual(t, tutorUser.ID.String(), rec.ID, "users never see themselves recommended")
		}
	}
}

func TestRecommendationsIncludeApprovedCourseResources(t *testing.T) {
	setupTestDB(t)

	student := createTestUser(t, "Amina Yusuf")
	student.Course = strPtr("CSC Computer Science")
	require.NoError(t, database.DB.Save(&student).Error)

	uploader := createTestUser(t, "Brian Otieno")
	approved := models.Resource{
		UserID: uploader.ID, Title: "CSC 201 past papers", Subject: "programming",
		CourseCode: "CSC 201", ResourceType: "past_paper", FileURL: "https://cdn.campus.test/csc201.pdf",
		IsApproved: true,
	}
	require.NoError(t, database.DB.Create(&approved).Error)

	pending := models.Resource{
		UserID: uploader.ID, Title: "CSC 305 draft notes", Subject: "programming",
		CourseCode: "CSC 305", ResourceType: "notes", FileURL: "https://cdn.campus.test/csc305.pdf",
		IsApproved: false,
	}
	require.NoError(t, database.DB.Create(&pending).Error)

	recommendations := GetRecommendations(&student, 5)

	var resourceIDs []string
	for _, rec := range recommendations {
		if rec.Type == "resource" {
			resourceIDs = append(resourceIDs, rec.ID)
			assert.Equal(t, 0.7, rec.Score)
		}
	}
	assert.Contains(t, resourceIDs, approved.ID.String())
	assert.NotContains(t, resourceIDs, pending.ID.String(), "unapproved resources are never recommended")
}

func TestRecommendationsSurfaceNearbyServices(t *testing.T) {
	setupTestDB(t)

	student := createTestUser(t, "Amina Yusuf")
	student.Location = strPtr("Westlands, Nairobi")
	require.NoError(t, database.DB.Save(&student).Error)

	owner := createTestUser(t, "Owner")
	nearby := models.Service{
		UserID: owner.ID, Name: "QuickPrint Westlands", Category: "printing",
		Location: "Westlands Mall", AverageRating: 4.2,
	}
	require.NoError(t, database.DB.Create(&nearby).Error)

	far := models.Service{
		UserID: owner.ID, Name: "Campus Laundry", Category: "laundry",
		Location: "Thika Road", AverageRating: 4.9,
	}
	require.NoError(t, database.DB.Create(&far).Error)

	recommendations := GetRecommendations(&student, 5)

	var serviceIDs []string
	for _, rec := range recommendations {
		if rec.Type == "service" {
			serviceIDs = append(serviceIDs, rec.ID)
			assert.Equal(t, 0.5, rec.Score)
		}
	}
	assert.Contains(t, serviceIDs, nearby.ID.String())
	assert.NotContains(t, serviceIDs, far.ID.String())
}

func TestRecommendationsDedupeAndFillWithPopular(t *testing.T) {
	setupTestDB(t)

	student := createTestUser(t, "Amina Yusuf")
	student.Course = strPtr("Computer Science")
	require.NoError(t, database.DB.Save(&student).Error)

	// Course-matched AND popular: must appear exactly once, at its
	// course-match score.
	matchUser, matchTutor := createTestTutor(t, 20.00)
	matchUser.Course = strPtr("Computer Science")
	require.NoError(t, database.DB.Save(&matchUser).Error)
	require.NoError(t, database.DB.Model(&models.Tutor{}).
		Where("user_id = ?", matchTutor.UserID).Update("rating", 4.9).Error)

	popularUser, popularTutor := createTestTutor(t, 30.00)
	require.NoError(t, database.DB.Model(&models.Tutor{}).
		Where("user_id = ?", popularTutor.UserID).Update("rating", 4.7).Error)

	recommendations := GetRecommendations(&student, 5)

	occurrences := 0
	for _, rec := range recommendations {
		if rec.Type == "tutor" && rec.ID == matchUser.ID.String() {
			occurrences++
			assert.Equal(t, 0.8, rec.Score)
		}
	}
	assert.Equal(t, 1, occurrences)

	found := false
	for _, rec := range recommendations {
		if rec.Type == "tutor" && rec.ID == popularUser.ID.String() {
			found = true
			assert.Equal(t, 0.4, rec.Score, "fill entries carry the popularity score")
		}
	}
	assert.True(t, found, "short lists top up with popular tutors")
}

func TestRecommendationsRespectLimit(t *testing.T) {
	setupTestDB(t)

	student := createTestUser(t, "Amina Yusuf")
	reporter := createTestUser(t, "Reporter")

	for i := 0; i < 4; i++ {
		item := models.LostItem{
			UserID: reporter.ID, Title: "Lost laptop", Category: "electronics",
			Status: models.LostItemStatusLost, LocationLost: "Library",
			DateLost: time.Now(), ContactInfo: "reporter@campus.test",
		}
		require.NoError(t, database.DB.Create(&item).Error)
	}

	recommendations := GetRecommendations(&student, 1)
	assert.LessOrEqual(t, len(recommendations), 1)
}
