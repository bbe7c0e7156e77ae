package handlers

import (
	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/omondi254/campus_hub/services"
	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	FullName          *string `json:"full_name"`
	PhoneNumber       *string `json:"phone_number"`
	University        *string `json:"university"`
	Course            *string `json:"course"`
	YearOfStudy       *int    `json:"year_of_study"`
	Location          *string `json:"location"`
	Bio               *string `json:"bio"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

func GetProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Preload("Badges").Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	wasComplete := profileComplete(user)

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.University != nil {
		user.University = req.University
	}
	if req.Course != nil {
		user.Course = req.Course
	}
	if req.YearOfStudy != nil {
		user.YearOfStudy = req.YearOfStudy
	}
	if req.Location != nil {
		user.Location = req.Location
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.ProfilePictureURL != nil {
		user.ProfilePictureURL = req.ProfilePictureURL
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	if !wasComplete && profileComplete(user) {
		go services.AwardPoints(user.ID, "complete_profile")
	}

	return c.JSON(user)
}

func profileComplete(user models.User) bool {
	return user.University != nil && *user.University != "" &&
		user.Course != nil && *user.Course != "" &&
		user.YearOfStudy != nil &&
		user.PhoneNumber != nil && *user.PhoneNumber != ""
}

func GetPublicProfile(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.Preload("Badges").Where("id = ? AND is_active = ?", userID, true).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"id":                  user.ID,
		"full_name":           user.FullName,
		"university":          user.University,
		"course":              user.Course,
		"year_of_study":       user.YearOfStudy,
		"bio":                 user.Bio,
		"points":              user.Points,
		"badges":              user.Badges,
		"profile_picture_url": user.ProfilePictureURL,
		"is_verified":         user.IsVerified,
		"created_at":          user.CreatedAt,
	})
}

func GetMyProgress(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var totalSessions int64
	database.DB.Model(&models.Session{}).
		Where("student_id = ? AND status = ?", studentID, models.SessionStatusCompleted).
		Count(&totalSessions)

	var totalHours float64
	database.DB.Model(&models.Session{}).
		Where("student_id = ? AND status = ?", studentID, models.SessionStatusCompleted).
		Select("COALESCE(SUM(duration), 0) / 60.0").
		Row().Scan(&totalHours)

	var certificates []models.Certificate
	database.DB.Where("student_id = ?", studentID).Order("created_at desc").Find(&certificates)

	return c.JSON(fiber.Map{
		"total_sessions_completed": totalSessions,
		"total_hours_learned":      totalHours,
		"certificates":             certificates,
	})
}
